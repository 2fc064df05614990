package hourbook

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// ImportLegacy reads the flat-file JSON format of the previous ledger
// application, a single object keyed by mobile number:
//
//	{"0300123": {"name": "...", "ledger": [{"sr":1, "date":"...", ...}]}}
//
// The two rewrites of that application disagreed on field names
// (amount_hour vs amount_per_hour, detail vs details), so fields are
// probed by jsonpath rather than bound to one struct shape. Any stored
// pending value is ignored; entries re-enter through AddEntry so the
// balance is derived fresh and serials are renumbered from file order.
//
// It returns the number of clients and entries imported. Clients whose
// mobile is already registered for the owner are an ErrDuplicate like
// any other registration.
func ImportLegacy(b *Book, owner string, r io.Reader) (clients, entries int, err error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, 0, fmt.Errorf("could not parse legacy ledger file: %w", err)
	}
	root, ok := jobj.(map[string]any)
	if !ok {
		return 0, 0, fmt.Errorf("legacy ledger file is not an object keyed by mobile: %w", ErrValidation)
	}

	mobiles := make([]string, 0, len(root))
	for mobile := range root {
		mobiles = append(mobiles, mobile)
	}
	sort.Strings(mobiles)

	for _, mobile := range mobiles {
		name := jstring(jobj, fmt.Sprintf("$[%q].name", mobile))
		if name == "" {
			name = mobile // the oldest files kept no name at all
		}
		c, err := b.RegisterClient(owner, name, mobile)
		if err != nil {
			return clients, entries, fmt.Errorf("could not import client %q: %w", mobile, err)
		}
		clients++

		rows, err := jsonpath.Get(fmt.Sprintf("$[%q].ledger[*]", mobile), jobj)
		if err != nil {
			continue // no ledger array for this client
		}
		list, ok := rows.([]any)
		if !ok {
			list = []any{rows}
		}
		for _, row := range list {
			in := EntryInput{
				Date:          jstring(row, "$.date"),
				Detail:        jstring(row, "$.detail", "$.details"),
				AmountPerHour: jnumber(row, "$.amount_hour", "$.amount_per_hour"),
				Deposit:       jnumber(row, "$.amount_deposit", "$.deposit"),
			}
			if _, err := b.AddEntry(owner, c.ID(), in); err != nil {
				return clients, entries, fmt.Errorf("could not import entry for client %q: %w", mobile, err)
			}
			entries++
		}
	}
	return clients, entries, nil
}

// jstring probes the paths in order and returns the first string found.
func jstring(jobj any, paths ...string) string {
	for _, path := range paths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer, so keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		if s, ok := jval.(string); ok {
			return s
		}
	}
	return ""
}

// jnumber probes the paths in order and returns the first number found,
// formatted back to its shortest decimal text form.
func jnumber(jobj any, paths ...string) string {
	for _, path := range paths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		switch v := jval.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			return v
		}
	}
	return ""
}
