package vocabulary

import (
	"fmt"
	"sync"
	"testing"

	"wordreader/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCountsConsistent(t *testing.T, s *Store) {
	t.Helper()
	c := s.Counts()
	assert.Equal(t, s.Len(), c.New+c.Learning+c.Known)
	assert.Equal(t, c.New, s.NewCount())
	assert.Equal(t, c.Learning, s.LearningCount())
	assert.Equal(t, c.Known, s.KnownCount())
}

func TestStore_AddWord_New(t *testing.T) {
	s := NewStore()

	w := s.AddWord("Hund", "dog", domain.StatusNew)

	assert.Equal(t, 1, w.ID)
	assert.Equal(t, "Hund", w.Original)
	assert.Equal(t, "dog", w.Translation)
	assert.Equal(t, domain.StatusNew, w.Status)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.NewCount())
}

func TestStore_AddWord_InvalidStatusDefaultsToNew(t *testing.T) {
	s := NewStore()

	w := s.AddWord("Katze", "cat", "")
	assert.Equal(t, domain.StatusNew, w.Status)

	w = s.AddWord("Maus", "mouse", domain.Status("whatever"))
	assert.Equal(t, domain.StatusNew, w.Status)
}

func TestStore_AddWord_DeduplicatesIgnoringCase(t *testing.T) {
	s := NewStore()

	first := s.AddWord("Haus", "house", domain.StatusNew)
	second := s.AddWord("haus", "home", domain.StatusLearning)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "home", second.Translation)
	assert.Equal(t, domain.StatusLearning, second.Status)
	// first casing is kept
	assert.Equal(t, "Haus", second.Original)
}

func TestStore_AddWord_OnlyCaseIsIgnored(t *testing.T) {
	s := NewStore()

	first := s.AddWord("Haus", "house", domain.StatusNew)
	second := s.AddWord(" haus ", "house", domain.StatusNew)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsWordSaved("HAUS"))
	assert.False(t, s.IsWordSaved("haus "))
	assert.True(t, s.IsWordSaved(" HAUS "))
}

func TestStore_AddWord_IgnoresBlankOriginal(t *testing.T) {
	s := NewStore()
	s.AddWord("Hund", "dog", domain.StatusNew)

	for _, blank := range []string{"", "   ", "\t\n"} {
		w := s.AddWord(blank, "nothing", domain.StatusKnown)
		assert.Equal(t, domain.Word{}, w)
		assert.False(t, s.IsWordSaved(blank))
	}

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.KnownCount())

	// ids stay dense for real words
	next := s.AddWord("Katze", "cat", domain.StatusNew)
	assert.Equal(t, 2, next.ID)
}

func TestStore_AddWord_OverwritesStatusUnconditionally(t *testing.T) {
	s := NewStore()

	w := s.AddWord("Baum", "tree", domain.StatusKnown)
	w = s.AddWord("BAUM", "tree", domain.StatusNew)

	assert.Equal(t, domain.StatusNew, w.Status)
	assert.Equal(t, 0, s.KnownCount())
	assert.Equal(t, 1, s.NewCount())
}

func TestStore_AddWord_AcceptsEmptyTranslation(t *testing.T) {
	s := NewStore()

	w := s.AddWord("Tisch", "", domain.StatusNew)
	assert.Equal(t, "", w.Translation)
	assert.True(t, s.IsWordSaved("tisch"))
}

func TestStore_DedupInvariant(t *testing.T) {
	s := NewStore()
	inputs := []string{"Apfel", "apfel", "APFEL", "Birne", "birne", "Kirsche", "ApFeL"}

	distinct := map[string]struct{}{}
	for i, in := range inputs {
		s.AddWord(in, fmt.Sprintf("t%d", i), domain.StatusNew)
		distinct[domain.NormalizeText(in)] = struct{}{}
	}

	assert.Equal(t, len(distinct), s.Len())
	w, ok := s.Lookup("apfel")
	require.True(t, ok)
	assert.Equal(t, "t6", w.Translation)
}

func TestStore_IdentifiersIncreaseAndAreNeverReused(t *testing.T) {
	s := NewStore()

	a := s.AddWord("eins", "one", domain.StatusNew)
	b := s.AddWord("zwei", "two", domain.StatusNew)
	s.RemoveWord(b.ID)
	c := s.AddWord("drei", "three", domain.StatusNew)
	s.RemoveWord(a.ID)
	d := s.AddWord("eins", "one", domain.StatusNew)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 3, c.ID)
	assert.Equal(t, 4, d.ID)

	got, ok := s.Word(c.ID)
	require.True(t, ok)
	assert.Equal(t, "drei", got.Original)
}

func TestStore_RemoveWord(t *testing.T) {
	s := NewStore()
	a := s.AddWord("rot", "red", domain.StatusNew)
	b := s.AddWord("blau", "blue", domain.StatusKnown)

	s.RemoveWord(a.ID)

	assert.False(t, s.IsWordSaved("rot"))
	assert.True(t, s.IsWordSaved("blau"))
	got, ok := s.Word(b.ID)
	require.True(t, ok)
	assert.Equal(t, b.ID, got.ID)
	assertCountsConsistent(t, s)
}

func TestStore_RemoveWord_UnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddWord("grün", "green", domain.StatusLearning)
	before := s.Words()
	countsBefore := s.Counts()

	s.RemoveWord(42)

	assert.Equal(t, before, s.Words())
	assert.Equal(t, countsBefore, s.Counts())
}

func TestStore_AdvanceStatus_Cycle(t *testing.T) {
	s := NewStore()
	w := s.AddWord("Hund", "dog", domain.StatusNew)

	expected := []domain.Status{domain.StatusLearning, domain.StatusKnown, domain.StatusNew}
	for _, want := range expected {
		got, ok := s.AdvanceStatus(w.ID)
		require.True(t, ok)
		assert.Equal(t, want, got.Status)
		assertCountsConsistent(t, s)
	}
}

func TestStore_AdvanceStatus_UnknownID(t *testing.T) {
	s := NewStore()

	_, ok := s.AdvanceStatus(7)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_UpdateStatus_Explicit(t *testing.T) {
	s := NewStore()
	w := s.AddWord("Hund", "dog", domain.StatusKnown)

	got, ok := s.UpdateStatus(w.ID, domain.StatusNew)
	require.True(t, ok)
	assert.Equal(t, domain.StatusNew, got.Status)

	got, ok = s.UpdateStatus(w.ID, domain.StatusKnown)
	require.True(t, ok)
	assert.Equal(t, domain.StatusKnown, got.Status)
}

func TestStore_UpdateStatus_InvalidOrUnknown(t *testing.T) {
	s := NewStore()
	w := s.AddWord("Hund", "dog", domain.StatusLearning)

	_, ok := s.UpdateStatus(w.ID, domain.Status("forgotten"))
	assert.False(t, ok)
	status, _ := s.GetWordStatus("hund")
	assert.Equal(t, domain.StatusLearning, status)

	_, ok = s.UpdateStatus(99, domain.StatusKnown)
	assert.False(t, ok)
}

func TestStore_GetWordStatus(t *testing.T) {
	s := NewStore()
	s.AddWord("Vogel", "bird", domain.StatusLearning)

	status, ok := s.GetWordStatus("VOGEL")
	assert.True(t, ok)
	assert.Equal(t, domain.StatusLearning, status)

	status, ok = s.GetWordStatus("Fisch")
	assert.False(t, ok)
	assert.Equal(t, domain.Status(""), status)
}

func TestStore_Words_PreservesInsertionOrderAndCopies(t *testing.T) {
	s := NewStore()
	s.AddWord("c", "3", domain.StatusNew)
	s.AddWord("a", "1", domain.StatusNew)
	s.AddWord("b", "2", domain.StatusNew)
	s.AddWord("A", "1'", domain.StatusKnown)

	words := s.Words()
	require.Len(t, words, 3)
	assert.Equal(t, "c", words[0].Original)
	assert.Equal(t, "a", words[1].Original)
	assert.Equal(t, "b", words[2].Original)

	words[0].Translation = "mutated"
	again := s.Words()
	assert.Equal(t, "3", again[0].Translation)
}

func TestStore_IndependentInstances(t *testing.T) {
	a := NewStore()
	b := NewStore()

	a.AddWord("Hund", "dog", domain.StatusNew)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, b.AddWord("Katze", "cat", domain.StatusNew).ID)
}

func TestStore_CountConsistency(t *testing.T) {
	s := NewStore()
	ids := []int{}
	for i := 0; i < 20; i++ {
		w := s.AddWord(fmt.Sprintf("w%d", i%12), "x", domain.Statuses()[i%3])
		ids = append(ids, w.ID)
		assertCountsConsistent(t, s)
	}
	for i, id := range ids {
		switch i % 3 {
		case 0:
			s.AdvanceStatus(id)
		case 1:
			s.UpdateStatus(id, domain.StatusKnown)
		case 2:
			s.RemoveWord(id)
		}
		assertCountsConsistent(t, s)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := s.AddWord(fmt.Sprintf("word%d", i%10), "t", domain.StatusNew)
			s.AdvanceStatus(w.ID)
			_ = s.Counts()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	assertCountsConsistent(t, s)
}

func TestStore_EndToEndScenario(t *testing.T) {
	s := NewStore()

	w := s.AddWord("Hund", "dog", domain.StatusNew)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, domain.StatusNew, w.Status)
	assert.Equal(t, 1, s.NewCount())

	again := s.AddWord("HUND", "dog (re-translated)", domain.StatusNew)
	assert.Equal(t, w.ID, again.ID)
	assert.Equal(t, "dog (re-translated)", again.Translation)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.NewCount())

	got, _ := s.AdvanceStatus(w.ID)
	assert.Equal(t, domain.StatusLearning, got.Status)
	got, _ = s.AdvanceStatus(w.ID)
	assert.Equal(t, domain.StatusKnown, got.Status)
	got, _ = s.AdvanceStatus(w.ID)
	assert.Equal(t, domain.StatusNew, got.Status)

	assert.True(t, s.IsWordSaved("hund"))
	assert.False(t, s.IsWordSaved("katze"))

	s.RemoveWord(w.ID)
	_, ok := s.GetWordStatus("hund")
	assert.False(t, ok)
	assert.Equal(t, domain.Counts{}, s.Counts())
}
