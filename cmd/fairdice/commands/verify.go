package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/orifhon74/task3/internal/protocol/fairness"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hmac> <value> <key>",
		Short: "Check a revealed commitment against its published HMAC",
		Long:  "Recompute HMAC-SHA3-256(key, value) from a reveal and compare it with the\nHMAC published at challenge time. Both hex arguments are the exact lowercase\nstrings printed during the game.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode hmac: %w", err)
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse value: %w", err)
			}
			key, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("decode key: %w", err)
			}
			cmd.SilenceUsage = true

			if !fairness.Verify(tag, value, key) {
				pterm.Error.Println("Commitment mismatch: the revealed value and key do not produce the published HMAC.")
				return fmt.Errorf("verification failed")
			}
			pterm.Success.Println("Commitment verified: the HMAC matches the revealed value and key.")
			return nil
		},
	}
}
