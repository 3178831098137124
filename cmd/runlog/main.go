// Command runlog drives a run log from shell scripts: create it, append
// to it, finish it and optionally mail it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"runlog"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "runlog",
	Short: "Create, append to, finish and mail a run log",
	Long: `Runlog keeps a timestamped plain-text log for a script run.

A run is: "runlog start" once, "runlog write" any number of times,
"runlog stop" once, and optionally "runlog send" to mail the result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		runlog.SetVerbose(verbose)
	},
}

var layout string

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Print the current bracketed log timestamp",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(runlog.Timestamp(layout))
	},
}

var startCmd = &cobra.Command{
	Use:   "start <dir> <name>",
	Short: "Create a fresh log file and write the opening record",
	Long: `Start creates <dir>/<name> and writes the timestamped opening record.
Any existing file at that path is destroyed first.  The resulting path is
printed so scripts can capture it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := runlog.Start(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <path> [message...]",
	Short: "Append timestamped messages to the log",
	Long: `Write appends one line per message argument.  With no message arguments
it reads standard input and appends one line per input line, so messages
can be piped in.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			_, err := runlog.WriteFrom(args[0], os.Stdin)
			return err
		}
		return runlog.Write(args[0], args[1:]...)
	},
}

var noExit bool

var stopCmd = &cobra.Command{
	Use:   "stop <path>",
	Short: "Write the closing record and exit",
	Long: `Stop appends the timestamped closing record and then terminates with
exit status 0.  Pass --no-exit to return normally instead, for callers
that source runlog into a larger pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if noExit {
			return runlog.Stop(args[0])
		}
		runlog.StopAndExit(args[0])
		return nil
	},
}

var (
	cfgPath    string
	relayFlags runlog.Relay
)

var sendCmd = &cobra.Command{
	Use:   "send <path>",
	Short: "Mail the finished log; exits 0 on success, 1 on failure",
	Long: `Send mails the whole log file as the body of one message, then
terminates: exit status 0 if the relay accepted it, 1 on any failure.
Relay defaults come from the JSON config (see --config); flags override.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.merge(relayFlags).SendAndExit(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace each operation's decisions on stderr")

	dateCmd.Flags().StringVar(&layout, "format", "", "timestamp layout in Go reference-time form (default \""+runlog.DefaultLayout+"\")")
	stopCmd.Flags().BoolVar(&noExit, "no-exit", false, "return instead of terminating the process")

	sendCmd.Flags().StringVar(&cfgPath, "config", "", "JSON relay config (default \""+defaultConfigPath+"\" if present)")
	sendCmd.Flags().StringVar(&relayFlags.Server, "server", "", "SMTP relay host")
	sendCmd.Flags().IntVar(&relayFlags.Port, "port", 0, "SMTP relay port (default 25)")
	sendCmd.Flags().StringVar(&relayFlags.Username, "username", "", "relay username (empty for unauthenticated relays)")
	sendCmd.Flags().StringVar(&relayFlags.Password, "password", "", "relay password")
	sendCmd.Flags().StringVar(&relayFlags.From, "from", "", "sender address")
	sendCmd.Flags().StringVar(&relayFlags.To, "to", "", "recipient addresses, comma separated")
	sendCmd.Flags().StringVar(&relayFlags.Subject, "subject", "", "message subject (default: the log path)")

	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(writeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
