package ledger

import (
	"hash/fnv"
	"sort"
	"strconv"
)

// Version computes a deterministic fingerprint of the ledger state a
// settlement plan was derived from: the set of expense and settlement record
// IDs that fed the computation.
//
// The caller attaches the version to each proposed instruction and sends it
// back on confirmation. If any expense or settlement was added or removed in
// between, the version changes and the confirmation must be rejected as
// stale, preventing two members from both paying the same debt off a shared
// "before" snapshot.
func Version(expenseIDs, settlementIDs []string) string {
	keys := make([]string, 0, len(expenseIDs)+len(settlementIDs))
	for _, id := range expenseIDs {
		keys = append(keys, "e:"+id)
	}
	for _, id := range settlementIDs {
		keys = append(keys, "s:"+id)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
