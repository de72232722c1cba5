package catalog

import (
	"sort"

	"github.com/leonelquinteros/gotext"
)

// parsePO reads msgid/msgstr pairs. Untranslated entries fall back to the
// msgid so the source message is still checked.
func parsePO(data []byte) ([]Entry, error) {
	po := gotext.NewPo()
	po.Parse(data)

	translations := po.GetDomain().GetTranslations()
	ids := make([]string, 0, len(translations))
	for id := range translations {
		if id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		msg := translations[id].Trs[0]
		if msg == "" {
			msg = id
		}
		entries = append(entries, Entry{Key: id, Message: msg})
	}
	return entries, nil
}
