package registry

import (
	"sync"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"pgregory.net/rapid"
)

type testItem struct {
	id    string
	value int
}

func (i testItem) ID() string { return i.id }

func ids(items []testItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.id)
	}
	return out
}

func TestRegisterKeepsInsertionOrder(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()

	g.Expect(reg.Register(testItem{"b", 1})).To(Succeed())
	g.Expect(reg.Register(testItem{"a", 2})).To(Succeed())
	g.Expect(reg.Register(testItem{"c", 3})).To(Succeed())

	g.Expect(ids(reg.List())).To(Equal([]string{"b", "a", "c"}))
	g.Expect(reg.List()).To(Equal([]testItem{{"b", 1}, {"a", 2}, {"c", 3}}))
	g.Expect(reg.Len()).To(Equal(3))
}

func TestRegisterReplacesInPlace(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()

	g.Expect(reg.Register(testItem{"a", 1})).To(Succeed())
	g.Expect(reg.Register(testItem{"b", 2})).To(Succeed())
	g.Expect(reg.Register(testItem{"a", 9})).To(Succeed())

	g.Expect(ids(reg.List())).To(Equal([]string{"a", "b"}))
	item, ok := reg.Get("a")
	g.Expect(ok).To(BeTrue())
	g.Expect(item.value).To(Equal(9))
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()

	g.Expect(reg.Register(testItem{"", 1})).To(MatchError(ErrEmptyID))
	g.Expect(reg.Len()).To(BeZero())
}

func TestUpdateOnlyExisting(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()

	g.Expect(reg.Update(testItem{"a", 1})).To(BeFalse())
	g.Expect(reg.Contains("a")).To(BeFalse())

	g.Expect(reg.Register(testItem{"a", 1})).To(Succeed())
	g.Expect(reg.Update(testItem{"a", 5})).To(BeTrue())

	item, _ := reg.Get("a")
	g.Expect(item.value).To(Equal(5))
}

func TestModify(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()

	called := false
	g.Expect(reg.Modify("a", func(it testItem) testItem { called = true; return it })).To(BeFalse())
	g.Expect(called).To(BeFalse())
	g.Expect(reg.Contains("a")).To(BeFalse())

	g.Expect(reg.Register(testItem{"a", 1})).To(Succeed())
	g.Expect(reg.Register(testItem{"b", 2})).To(Succeed())
	g.Expect(reg.Modify("a", func(it testItem) testItem {
		it.value += 10
		return it
	})).To(BeTrue())

	item, _ := reg.Get("a")
	g.Expect(item.value).To(Equal(11))
	g.Expect(ids(reg.List())).To(Equal([]string{"a", "b"}))
}

// TestModify_ConcurrentIncrements loses no update when Modify runs from many
// goroutines at once.
func TestModify_ConcurrentIncrements(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()
	g.Expect(reg.Register(testItem{"a", 0})).To(Succeed())

	const workers, perWorker = 8, 500
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				reg.Modify("a", func(it testItem) testItem {
					it.value++
					return it
				})
			}
		}()
	}
	wg.Wait()

	item, _ := reg.Get("a")
	g.Expect(item.value).To(Equal(workers * perWorker))
}

func TestListReturnsCopy(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry[testItem]()
	g.Expect(reg.Register(testItem{id: "a"})).To(Succeed())

	items := reg.List()
	items[0] = testItem{id: "mutated"}

	g.Expect(ids(reg.List())).To(Equal([]string{"a"}))
}

// TestRegistry_OrderProperty checks that List always returns each registered
// id once, in order of first registration.
func TestRegistry_OrderProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		drawn := rapid.SliceOf(rapid.SampledFrom([]string{"a", "b", "c", "d", "e"})).Draw(rt, "ids")

		reg := NewRegistry[testItem]()
		var want []string
		seen := map[string]bool{}
		for i, id := range drawn {
			if err := reg.Register(testItem{id, i}); err != nil {
				rt.Fatalf("register %q: %v", id, err)
			}
			if !seen[id] {
				seen[id] = true
				want = append(want, id)
			}
		}

		got := ids(reg.List())
		if len(got) != len(want) {
			rt.Fatalf("keys = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				rt.Fatalf("keys = %v, want %v", got, want)
			}
		}
		if reg.Len() != len(want) {
			rt.Fatalf("len = %d, want %d", reg.Len(), len(want))
		}
	})
}
