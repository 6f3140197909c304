package service

import (
	"fmt"
	"strings"

	calculatorDomain "github.com/allisson/strcalc/internal/calculator/domain"
)

const (
	declarationTerminator = "\n"
	groupOpen             = "["
	groupClose            = "]"
)

// Resolve splits input into its delimiter spec and numeric body.
//
// Input without the "//" marker uses the default spec and is returned unchanged as the
// body. Otherwise the text up to the first newline is the declaration: either one
// literal ("//;\n") or a contiguous run of bracketed literals ("//[*][%]\n").
func Resolve(input string) (calculatorDomain.ParsedInput, error) {
	if !strings.HasPrefix(input, calculatorDomain.DeclarationMarker) {
		return calculatorDomain.ParsedInput{
			Spec: calculatorDomain.DefaultDelimiterSpec(),
			Body: input,
		}, nil
	}

	rest := strings.TrimPrefix(input, calculatorDomain.DeclarationMarker)
	declaration, body, found := strings.Cut(rest, declarationTerminator)
	if !found {
		return calculatorDomain.ParsedInput{}, fmt.Errorf(
			"%w: no newline after %q",
			calculatorDomain.ErrMalformedDeclaration,
			calculatorDomain.DeclarationMarker,
		)
	}

	if declaration == "" {
		return calculatorDomain.ParsedInput{}, fmt.Errorf(
			"%w: empty delimiter",
			calculatorDomain.ErrMalformedDeclaration,
		)
	}

	if !strings.HasPrefix(declaration, groupOpen) {
		return calculatorDomain.ParsedInput{
			Spec: calculatorDomain.SingleDelimiterSpec(declaration),
			Body: body,
		}, nil
	}

	delimiters, err := parseDelimiterGroups(declaration)
	if err != nil {
		return calculatorDomain.ParsedInput{}, err
	}

	return calculatorDomain.ParsedInput{
		Spec: calculatorDomain.MultipleDelimiterSpec(delimiters),
		Body: body,
	}, nil
}

// parseDelimiterGroups extracts the literals of "[a][bb][a]" left to right, keeping
// duplicates. A literal is at least one byte long, so "[]]" declares "]".
func parseDelimiterGroups(declaration string) ([]string, error) {
	var delimiters []string

	rest := declaration
	for rest != "" {
		if !strings.HasPrefix(rest, groupOpen) {
			return nil, fmt.Errorf(
				"%w: unexpected %q after delimiter groups",
				calculatorDomain.ErrMalformedDeclaration,
				rest,
			)
		}

		end := -1
		if len(rest) > 2 {
			end = strings.Index(rest[2:], groupClose)
		}
		if end < 0 {
			return nil, fmt.Errorf(
				"%w: unterminated or empty delimiter group %q",
				calculatorDomain.ErrMalformedDeclaration,
				rest,
			)
		}
		end += 2

		delimiters = append(delimiters, rest[len(groupOpen):end])
		rest = rest[end+len(groupClose):]
	}

	return delimiters, nil
}
