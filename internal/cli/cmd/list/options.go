package list

var opts = &options{}

type options struct {
	Query string
}

func init() {
	flags := Command.Flags()
	flags.StringVar(&opts.Query, "query", "",
		"Only list items matching this search index query.")
}
