package importcmd

var opts = &options{}

type options struct {
	NoIndex bool
}

func init() {
	flags := Command.Flags()
	flags.BoolVar(&opts.NoIndex, "no-index", false,
		"Only write the store, leave the search index untouched.")
}
