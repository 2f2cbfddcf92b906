package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tsaristov/MoodJournal/internal/config"
	"github.com/tsaristov/MoodJournal/internal/mood"
	"github.com/tsaristov/MoodJournal/internal/oracle"
	"github.com/tsaristov/MoodJournal/internal/prompt"
	"github.com/tsaristov/MoodJournal/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	oracleClient, err := oracle.NewClient(cfg.OracleURL, cfg.APIKey, cfg.OracleTimeout)
	if err != nil {
		return err
	}

	mapper := mood.NewMapper(oracleClient, cfg.MoodModel, cfg.CoordinateFallback)
	generator := prompt.NewGenerator(oracleClient, cfg.PromptModel, prompt.NewSelector())

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("\n=== Welcome to Your Mood Journal ===")

	emotion, coords, err := readEmotion(in, mapper)
	if err != nil {
		return err
	}
	fmt.Printf("\nRecorded emotion: %s\n", emotion)

	text := generator.Generate(context.Background(), emotion)

	response, err := readResponse(in, text)
	if err != nil {
		return err
	}
	if strings.TrimSpace(response) == "" {
		return fmt.Errorf("journal response must not be empty")
	}

	entry := store.NewEntry{
		Emotion:  emotion,
		Prompt:   text,
		Response: response,
	}
	if coords != nil {
		entry.X, entry.Y = &coords[0], &coords[1]
	}

	if _, err := s.Append(entry); err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}

	fmt.Println("\nJournal entry saved successfully!")
	if coords != nil {
		fmt.Printf("Coordinates used: x=%d, y=%d\n", coords[0], coords[1])
	}
	return nil
}

var errInputClosed = errors.New("input closed")

// readEmotion loops until the user picks a valid input mode and supplies a
// usable emotion, either via plane coordinates or a typed word.
func readEmotion(in *bufio.Scanner, mapper *mood.Mapper) (string, *[2]int, error) {
	for {
		fmt.Print("\nHow would you like to input your emotion?\n1. Use coordinates\n2. Enter emotion directly\nChoice (1/2): ")
		choice, err := readLine(in)
		if err != nil {
			return "", nil, err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			x, err := readCoordinate(in, "\nEnter X coordinate (-100 to 100, negative=bad to positive=good): ")
			if err != nil {
				if errors.Is(err, errInputClosed) {
					return "", nil, err
				}
				fmt.Printf("\nError: %v. Please try again.\n", err)
				continue
			}
			y, err := readCoordinate(in, "Enter Y coordinate (-100 to 100, low to high energy): ")
			if err != nil {
				if errors.Is(err, errInputClosed) {
					return "", nil, err
				}
				fmt.Printf("\nError: %v. Please try again.\n", err)
				continue
			}

			emotion, err := mapper.MapCoordinates(context.Background(), x, y)
			if err != nil {
				fmt.Printf("\nError: %v. Please try again.\n", err)
				continue
			}
			return emotion, &[2]int{x, y}, nil

		case "2":
			fmt.Print("\nEnter your emotion (e.g., happy, sad, anxious): ")
			word, err := readLine(in)
			if err != nil {
				return "", nil, err
			}
			emotion := mood.Capitalize(word)
			if emotion == "" {
				fmt.Println("\nEmotion must not be empty.")
				continue
			}
			return emotion, nil, nil
		}

		fmt.Println("\nInvalid choice. Please enter 1 or 2.")
	}
}

func readCoordinate(in *bufio.Scanner, label string) (int, error) {
	fmt.Print(label)
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("coordinate must be a whole number")
	}
	return v, nil
}

// readResponse collects a multi-line journal entry, terminated by two
// consecutive empty lines.
func readResponse(in *bufio.Scanner, promptText string) (string, error) {
	fmt.Println("\n---")
	fmt.Println("\nWrite your journal entry (press Enter twice to finish):")
	fmt.Printf("Prompt: %s\n\n", promptText)

	var lines []string
	for {
		line, err := readLine(in)
		if err != nil {
			// End of input terminates the entry too.
			break
		}
		if line == "" && len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return in.Text(), nil
}
