package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

type fetchProgressMsg float64

type fetchDoneMsg struct {
	err error
}

type fetchModel struct {
	url      string
	progress progress.Model
	ratio    float64
	err      error
}

func newFetchModel(url string) fetchModel {
	return fetchModel{url: url, progress: progress.New(progress.WithDefaultGradient())}
}

func (m fetchModel) Init() tea.Cmd {
	return nil
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err = errors.New("download cancelled")
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.progress.Width = msg.Width - h
	case fetchProgressMsg:
		m.ratio = float64(msg)
	case fetchDoneMsg:
		m.err = msg.err
		m.ratio = 1
		return m, tea.Quit
	}
	return m, nil
}

func (m fetchModel) View() string {
	return docStyle.Render(fmt.Sprintf("Downloading %s\n\n%s", m.url, m.progress.ViewAs(m.ratio))) + "\n"
}

// fetch downloads a document while a progress bar tracks how much of
// the response body has arrived.
func fetch(url string, path string) error {
	p := tea.NewProgram(newFetchModel(url))
	go func() {
		err := fetchFile(url, path, func(ratio float64) {
			p.Send(fetchProgressMsg(ratio))
		})
		p.Send(fetchDoneMsg{err: err})
	}()

	model, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "could not run download ui")
	}
	if m, ok := model.(fetchModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

type progressWriter struct {
	total   int64
	written int64
	report  func(float64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if w.total > 0 {
		w.report(float64(w.written) / float64(w.total))
	}
	return len(p), nil
}

func fetchFile(url string, filepath string, report func(float64)) (err error) {
	// Create the file
	out, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(err, "could not create file for download")
	}
	defer out.Close()

	// Get the data
	resp, err := http.Get(url)
	if err != nil {
		return errors.Wrap(err, "could not download the file data")
	}
	defer resp.Body.Close()

	// Check server response
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("download received bad status: %s", resp.Status)
	}

	// Write the body to file
	pw := &progressWriter{total: resp.ContentLength, report: report}
	_, err = io.Copy(io.MultiWriter(out, pw), resp.Body)
	if err != nil {
		return errors.Wrap(err, "could not write download data to file")
	}
	err = out.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync downloaded file")
	}

	return nil
}
