package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/daypick/internal/models"
	"github.com/spf13/pflag"
)

// tabValue is a --tab flag accepting a tab id, its number (1-3) or a short
// name (days, date, input)
type tabValue struct {
	tab models.Tab
}

var _ pflag.Value = (*tabValue)(nil)

var tabAliases = map[string]models.Tab{
	"1":     models.TabDays,
	"days":  models.TabDays,
	"2":     models.TabDate,
	"date":  models.TabDate,
	"3":     models.TabInput,
	"input": models.TabInput,
}

func (v *tabValue) String() string {
	return string(v.tab)
}

func (v *tabValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := tabAliases[s]; ok {
		v.tab = t
		return nil
	}
	if models.IsValidTab(models.Tab(s)) {
		v.tab = models.Tab(s)
		return nil
	}
	return fmt.Errorf("unknown tab %q (use days, date, input or 1-3)", s)
}

func (v *tabValue) Type() string {
	return "tab"
}

// tabFlag reads a tabValue registered under name
func tabFlag(fs *pflag.FlagSet, name string) models.Tab {
	f := fs.Lookup(name)
	if f == nil {
		return ""
	}
	if v, ok := f.Value.(*tabValue); ok {
		return v.tab
	}
	return ""
}
