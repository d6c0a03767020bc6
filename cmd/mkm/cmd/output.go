package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/mkm/internal/mkm"
	domain "github.com/donaldgifford/mkm/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAccountDetail(w io.Writer, a *domain.Account) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", a.IDUser)
	tw.writef("Username:\t%s\n", a.Username)
	if a.Name != nil {
		tw.writef("Name:\t%s %s\n", a.Name.FirstName, a.Name.LastName)
	}
	tw.writef("Country:\t%s\n", a.Country)
	tw.writef("May Sell:\t%v\n", a.MaySell)
	tw.writef("On Vacation:\t%v\n", a.OnVacation)
	tw.writef("Display Language:\t%s\n", displayLanguage(a.IDDisplayLanguage))
	if a.MoneyDetails != nil {
		tw.writef("Balance:\t€%.2f\n", a.MoneyDetails.TotalBalance)
	}
	tw.writef("Unread Messages:\t%d\n", a.UnreadMessages)
	return tw.finish()
}

func displayLanguage(id json.Number) string {
	code, err := id.Int64()
	if err != nil {
		return id.String()
	}
	if name, ok := mkm.LanguageName(int(code)); ok {
		return name
	}
	return id.String()
}

func printArticlesTable(w io.Writer, articles []domain.Article) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPRODUCT\tNAME\tLANG\tCOND\tFOIL\tCOUNT\tPRICE\tCOMMENTS\n")
	for i := range articles {
		a := &articles[i]
		name := "-"
		if a.Product != nil {
			name = truncate(a.Product.EnName, 30)
		}
		lang := "-"
		if a.Language != nil {
			lang = a.Language.LanguageName
		}
		tw.writef("%d\t%d\t%s\t%s\t%s\t%v\t%d\t€%.2f\t%s\n",
			a.IDArticle,
			a.IDProduct,
			name,
			lang,
			a.Condition,
			a.IsFoil,
			a.Count,
			a.Price,
			truncate(a.Comments, 30),
		)
	}
	return tw.finish()
}

func printProductsTable(w io.Writer, products []domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tEXPANSION\tRARITY\tGAME\n")
	for i := range products {
		tw.writef("%d\t%s\t%s\t%s\t%d\n",
			products[i].IDProduct,
			truncate(products[i].EnName, 40),
			products[i].ExpansionName,
			products[i].Rarity,
			products[i].IDGame,
		)
	}
	return tw.finish()
}

func printProductDetail(w io.Writer, p *domain.Product) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", p.IDProduct)
	tw.writef("Name:\t%s\n", p.EnName)
	tw.writef("Expansion:\t%s\n", p.ExpansionName)
	tw.writef("Rarity:\t%s\n", p.Rarity)
	tw.writef("Number:\t%s\n", p.Number)
	if pg := p.PriceGuide; pg != nil {
		tw.writef("Trend:\t€%.2f\n", pg.Trend)
		tw.writef("Low:\t€%.2f\n", pg.Low)
		tw.writef("Average Sell:\t€%.2f\n", pg.Sell)
		tw.writef("Trend (foil):\t€%.2f\n", pg.TrendFoil)
	}
	if p.Website != "" {
		tw.writef("URL:\thttps://www.cardmarket.com%s\n", p.Website)
	}
	return tw.finish()
}

func printStockResultsTable(w io.Writer, results []domain.StockResult) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSUCCESS\tCOUNT\tERROR\n")
	for i := range results {
		errText := results[i].Error
		if errText == "" {
			errText = "-"
		}
		tw.writef("%d\t%v\t%d\t%s\n",
			results[i].IDArticle,
			results[i].Success,
			results[i].Count,
			truncate(errText, 50),
		)
	}
	return tw.finish()
}

func printWantslistsTable(w io.Writer, lists []domain.Wantslist) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tITEMS\tGAME\n")
	for i := range lists {
		game := "-"
		if lists[i].Game != nil {
			game = lists[i].Game.Name
		}
		tw.writef("%d\t%s\t%d\t%s\n",
			lists[i].IDWantslist,
			lists[i].Name,
			lists[i].ItemCount,
			game,
		)
	}
	return tw.finish()
}

func printWantslistItemsTable(w io.Writer, items []domain.WantslistItem) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTYPE\tNAME\tCOUNT\tMIN COND\tWISH PRICE\n")
	for i := range items {
		it := &items[i]
		name := "-"
		if it.Product != nil {
			name = truncate(it.Product.EnName, 30)
		}
		minCond := string(it.MinCondition)
		if minCond == "" {
			minCond = "-"
		}
		tw.writef("%s\t%s\t%s\t%d\t%s\t€%.2f\n",
			it.IDWant,
			it.Type,
			name,
			it.Count,
			minCond,
			it.WishPrice,
		)
	}
	return tw.finish()
}

func printLanguagesTable(w io.Writer, langs []mkm.LanguageEntry) error {
	tw := newTabWriter(w)
	tw.writef("CODE\tLANGUAGE\n")
	for _, l := range langs {
		tw.writef("%d\t%s\n", l.Code, l.Name)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputRaw pretty-prints an undecoded API payload.
func outputRaw(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
