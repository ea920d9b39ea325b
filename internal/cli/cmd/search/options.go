package search

var opts = &options{}

type options struct {
	Limit int
}

func init() {
	flags := Command.Flags()
	flags.IntVar(&opts.Limit, "limit", 100,
		"Maximum number of results, 0 for every match.")
}
