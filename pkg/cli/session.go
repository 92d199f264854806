package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"perfumeHelper/pkg/perfume"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	genderPrompt      = "Enter gender (male/female): "
	temperaturePrompt = "Enter temperature in °C (example 22): "
	rainyPrompt       = "Is it rainy? (yes/no): "
)

// Suggester serves recommendations for already parsed input.
type Suggester interface {
	Suggest(ctx context.Context, req perfume.Request) (perfume.Suggestion, error)
}

// Answers are values given upfront, e.g. from flags. Nil fields are asked interactively.
type Answers struct {
	Gender      *string
	Temperature *string
	Rainy       *string
}

type Session struct {
	In          io.Reader
	Out         io.Writer
	ShowPrompts bool
	Suggester   Suggester
}

// Run asks for the missing answers and prints recommendations. Input problems are reported
// to the user and are not returned as errors, only failures of the io or of the suggester are.
func (s *Session) Run(ctx context.Context, preset Answers) error {
	reader := bufio.NewReader(s.In)

	fmt.Fprintln(s.Out, Banner)
	fmt.Fprintf(s.Out, "%s\n\n", Subtitle)

	gender, err := s.ask(reader, preset.Gender, genderPrompt)
	if err != nil {
		return err
	}

	tempInput, err := s.ask(reader, preset.Temperature, temperaturePrompt)
	if err != nil {
		return err
	}

	rainyInput, err := s.ask(reader, preset.Rainy, rainyPrompt)
	if err != nil {
		return err
	}

	tempC, err := ParseTemperature(tempInput)
	if err != nil {
		RenderInputError(s.Out, err)
		return nil
	}

	suggestion, err := s.Suggester.Suggest(ctx, perfume.Request{
		Gender:      gender,
		Temperature: tempC,
		Rainy:       ParseRainy(rainyInput),
	})
	if errors.Is(err, perfume.ErrInvalidInput) {
		RenderInputError(s.Out, err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n%s", Render(suggestion))

	return nil
}

func (s *Session) ask(reader *bufio.Reader, preset *string, prompt string) (string, error) {
	if preset != nil {
		return strings.TrimSpace(*preset), nil
	}

	if s.ShowPrompts {
		fmt.Fprint(s.Out, prompt)
	}

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read the answer")
	}

	if errors.Is(err, io.EOF) {
		logrus.Debugf("input ended before the answer to %q", strings.TrimSpace(prompt))
	}

	return strings.TrimSpace(line), nil
}
