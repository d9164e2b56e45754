package main

import (
	"fmt"
	"time"

	"heartbank/internal/locale"

	"github.com/urfave/cli/v2"
)

var localeCommand = &cli.Command{
	Name:  "locale",
	Usage: "Show direction and formatting for a language",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Value:   "en",
		},
		&cli.TimestampFlag{
			Name:   "date",
			Layout: "2006-01-02",
			Usage:  "Date to format (YYYY-MM-DD), defaults to today",
		},
		&cli.Float64Flag{
			Name:  "number",
			Value: 1234567.89,
		},
	},
	Action: func(cCtx *cli.Context) error {
		lang := cCtx.String("lang")

		date := time.Now()
		if ts := cCtx.Timestamp("date"); ts != nil {
			date = *ts
		}

		w := cCtx.App.Writer
		fmt.Fprintf(w, "language:  %s (%s)\n", lang, locale.DisplayName(lang))
		fmt.Fprintf(w, "direction: %s\n", locale.TextDirection(lang))
		fmt.Fprintf(w, "locale:    %s\n", locale.LocaleTag(lang))
		fmt.Fprintf(w, "date:      %s\n", locale.FormatDate(date, lang))
		fmt.Fprintf(w, "number:    %s\n", locale.FormatNumber(cCtx.Float64("number"), lang))
		return nil
	},
}
