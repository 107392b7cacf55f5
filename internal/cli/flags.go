package cli

import (
	"github.com/spf13/pflag"
)

func addWindowFlag(fs *pflag.FlagSet, days *int) {
	fs.IntVarP(days, "days", "d", 0, "window to report: 1 or 7 days (prompted when omitted on a terminal)")
}

func addInterfaceFlag(fs *pflag.FlagSet, iface *string) {
	fs.StringVarP(iface, "interface", "i", "", "network interface (default from config)")
}

func addHistoryFileFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "history-file", "", "read saved 'last -x' output instead of running the command")
}
