package ordering

import "sort"

// SummaryLine counts identical orders: same item, same option text.
type SummaryLine struct {
	ItemName string
	Option   *string
	Count    int
	Members  []string
}

// Summarize groups orders by item name and option. Orders without an option
// are kept apart from orders with empty option text.
func Summarize(orders []Order) []SummaryLine {
	type key struct {
		item   string
		hasOpt bool
		opt    string
	}
	idx := make(map[key]int)
	var lines []SummaryLine

	for _, o := range orders {
		k := key{item: o.ItemName, hasOpt: o.Option != nil, opt: o.OptionText()}
		i, ok := idx[k]
		if !ok {
			i = len(lines)
			idx[k] = i
			lines = append(lines, SummaryLine{ItemName: o.ItemName, Option: o.Option})
		}
		lines[i].Count++
		lines[i].Members = append(lines[i].Members, o.MemberName)
	}

	sort.SliceStable(lines, func(a, b int) bool {
		if lines[a].ItemName != lines[b].ItemName {
			return lines[a].ItemName < lines[b].ItemName
		}
		return optText(lines[a].Option) < optText(lines[b].Option)
	})
	return lines
}

func optText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
