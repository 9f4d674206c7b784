package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/codegate/internal/greeting"
	"github.com/bartekus/codegate/internal/logger"
)

func newHelloCmd() *cobra.Command {
	var (
		lang    string
		goodbye bool
	)

	cmd := &cobra.Command{
		Use:   "hello NAME",
		Short: "Greet NAME (example program)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := greeting.New(lang)
			logger.Debug(cmd.Context(), "greeting", "lang", s.Lang(), "goodbye", goodbye)
			msg := s.Hello(args[0])
			if goodbye {
				msg = s.Goodbye(args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}

	cmd.Flags().BoolVar(&goodbye, "goodbye", false, "say goodbye instead")
	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "greeting language (en, sv; anything else is Esperanto)")
	return cmd
}
