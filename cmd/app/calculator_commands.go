package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/strcalc/cmd/app/commands"
	"github.com/allisson/strcalc/internal/app"
	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
	"github.com/allisson/strcalc/internal/config"
)

func calculateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Input string, e.g. \"//;\\n1;2\" (read from stdin when omitted)",
		},
		&cli.BoolFlag{
			Name:    "escaped",
			Aliases: []string{"e"},
			Usage:   "Interpret \\n, \\r, \\t and \\\\ escapes in the input",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "Output format: 'text' or 'json'",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Show delimiters, tokens and ignored operands",
		},
	}
}

func calculateAction(op calculatorDomain.Operation) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg := config.Load()
		container := app.NewContainer(cfg)
		defer func() { _ = container.Shutdown(ctx) }()

		useCase, err := container.CalculatorUseCase()
		if err != nil {
			return err
		}

		return commands.RunCalculate(
			ctx,
			useCase,
			container.Logger(),
			commands.DefaultIO(),
			op,
			commands.CalculateOptions{
				Input:    cmd.String("input"),
				HasInput: cmd.IsSet("input"),
				Escaped:  cmd.Bool("escaped"),
				Format:   cmd.String("format"),
				Verbose:  cmd.Bool("verbose"),
			},
		)
	}
}

func getCalculatorCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "add",
			Usage:  "Sum the numbers in the input, ignoring those above 1000",
			Flags:  calculateFlags(),
			Action: calculateAction(calculatorDomain.OperationAdd),
		},
		{
			Name:   "subtract",
			Usage:  "Subtract the later numbers in the input from the first one",
			Flags:  calculateFlags(),
			Action: calculateAction(calculatorDomain.OperationSubtract),
		},
	}
}
