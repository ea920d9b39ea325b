package crosswalk

var opts = &options{}

type options struct {
	Write    string
	Default  bool
	Handlers bool
}

func init() {
	flags := Command.Flags()
	flags.StringVarP(&opts.Write, "write", "w", "",
		"Write the crosswalk to this file instead of standard output.")
	flags.BoolVar(&opts.Default, "default", false,
		"Use the built-in crosswalk even when a crosswalk file is configured.")
	flags.BoolVar(&opts.Handlers, "handlers", false,
		"List the handler names rules may use instead of printing the crosswalk.")
}
