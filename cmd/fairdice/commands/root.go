package commands

import (
	"errors"
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/orifhon74/task3/internal/app"
	"github.com/orifhon74/task3/internal/domain"
	"github.com/orifhon74/task3/internal/services/game"
)

func Execute() error {
	root := &cobra.Command{
		Use:     "fairdice <die> <die> <die> [die ...]",
		Short:   "Provably fair non-transitive dice game",
		Long:    "Play a non-transitive dice game against the computer.\nEach die is a comma-separated list of integer faces; all dice share one face count.\nEvery random value the computer contributes is committed to with an HMAC before\nyour input and revealed with its key afterwards, so you can verify every throw.",
		Example: "  fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := domain.ParseDiceSet(args)
			if err != nil {
				return err
			}
			// Dice are valid; later failures are not usage problems.
			cmd.SilenceUsage = true

			printBanner()
			appCtx := app.New(set, app.Config{
				Help: func(w io.Writer) { renderHelp(w, set) },
			})
			switch err := appCtx.Session.Run(); {
			case errors.Is(err, game.ErrExit):
				pterm.Info.Println("Exiting the game.")
				return nil
			case err != nil:
				return err
			}
			return nil
		},
	}

	root.AddCommand(verifyCmd())
	return root.Execute()
}

func printBanner() {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Fair", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("Dice", pterm.FgLightMagenta.ToStyle()),
	).Srender()
	if err != nil {
		return
	}
	pterm.Print(banner)
}
