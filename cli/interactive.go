package cli

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	ms "parbox.dev/parbox/settings"
)

func interactive() {
	for {
		prompt := promptui.Select{
			Label: "Select Action",
			Items: []string{"Settings", "Exit"},
		}

		_, result, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}

		switch result {
		case "Settings":
			settings()
		case "Exit":
			return
		}
	}
}

func settings() {
	for {
		prompt := promptui.Select{
			Label: "Select Setting",
			Items: []string{"Log Level", "Split Threshold", "Workers", "Save", "Back"},
		}

		_, result, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}

		switch result {
		case "Log Level":
			levelPrompt := promptui.Select{
				Label: "Log Level",
				Items: []string{"debug", "info", "warn", "error"},
			}
			_, level, err := levelPrompt.Run()
			if err != nil {
				fmt.Printf("Prompt failed %v\n", err)
				continue
			}
			ms.Settings.LogLevel = level
			ms.Settings.SetLogLevel()
		case "Split Threshold":
			value, err := promptInt("Split Threshold", ms.Settings.Threshold, 1)
			if err != nil {
				continue
			}
			ms.Settings.Threshold = value
		case "Workers":
			value, err := promptInt("Workers (0 = one per execution unit)", ms.Settings.Workers, 0)
			if err != nil {
				continue
			}
			ms.Settings.Workers = value
		case "Save":
			ms.Settings.Save()
		case "Back":
			return
		}
	}
}

func promptInt(label string, current int, minimum int) (int, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(current),
		Validate: func(input string) error {
			value, err := strconv.Atoi(input)
			if err != nil {
				return errors.New("not a number")
			}
			if value < minimum {
				return errors.Errorf("must be at least %d", minimum)
			}
			return nil
		},
	}

	result, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return 0, err
	}
	value, err := strconv.Atoi(result)
	if err != nil {
		return 0, err
	}
	return value, nil
}
