package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TryMightyAI/unorm/pkg/norm"
)

var formName string

func init() {
	normalizeCmd.Flags().StringVarP(&formName, "form", "f", "nfc",
		"normalization form: none, nfd, nfkd, nfc, nfkc, fcd")
	checkCmd.Flags().StringVarP(&formName, "form", "f", "nfc",
		"normalization form: none, nfd, nfkd, nfc, nfkc, fcd")
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(checkCmd)
}

// inputText joins command arguments, or reads stdin when none are given.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Normalize text from arguments or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := norm.ParseForm(formName)
		if err != nil {
			return err
		}
		text, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		out, err := norm.NormalizeString(form, text)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Report whether text is already normalized",
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := norm.ParseForm(formName)
		if err != nil {
			return err
		}
		text, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		quick := norm.QuickCheck(form, []rune(text))
		normalized, err := norm.IsNormalString(form, text)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "quick check: %s\nnormalized:  %v\n", quick, normalized)
		return nil
	},
}
