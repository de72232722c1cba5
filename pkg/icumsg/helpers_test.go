package icumsg_test

import (
	"testing"

	"github.com/yaklabco/goicu/pkg/expand"
)

func expandMap(t *testing.T, kv ...string) *expand.OrderedMap {
	t.Helper()

	if len(kv)%2 != 0 {
		t.Fatalf("odd key/value list: %v", kv)
	}
	m := expand.NewOrderedMap()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}
