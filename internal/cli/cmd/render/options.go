package render

var opts = &options{}

type options struct {
	Query  string
	Output string
	Indent string
	Get    bool
}

func init() {
	flags := Command.Flags()
	flags.StringVar(&opts.Query, "query", "",
		"Select items with a search index query instead of listing ids.")
	flags.StringVarP(&opts.Output, "output", "o", "",
		"Write the response to this file instead of standard output.")
	flags.StringVar(&opts.Indent, "indent", "  ",
		"Indentation of the XML output. Empty for compact output.")
	flags.BoolVar(&opts.Get, "get", false,
		"Wrap a single item in a GetRecord response instead of ListRecords.")
}
