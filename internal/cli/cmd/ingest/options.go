package ingest

var opts = &options{}

type options struct {
	FirstID int64
	Catalog string
	Since   string
	NoIndex bool
}

func init() {
	flags := Command.Flags()
	flags.Int64Var(&opts.FirstID, "first-id", 0,
		"Id of the first ingested item. Defaults to one past the highest stored id.")
	flags.StringVar(&opts.Catalog, "catalog", "",
		"Also write the ingested items to this catalog file.")
	flags.StringVar(&opts.Since, "since", "",
		"Only keep files modified after this date (YYYY-MM-DD).")
	flags.BoolVar(&opts.NoIndex, "no-index", false,
		"Only write the store, leave the search index untouched.")
}
