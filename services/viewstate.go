package services

import (
	"slices"
	"sync"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

// ViewState owns the selected dashboard tab. It starts on the overview and
// only changes through SelectTab.
type ViewState struct {
	// notify serialises selections so listeners see them in the order
	// they were applied. Listeners must not call SelectTab.
	notify sync.Mutex

	mu        sync.Mutex
	active    models.Tab
	listeners []func(models.Tab)
}

func NewViewState() *ViewState {
	return &ViewState{active: models.TabOverview}
}

// Active returns the currently selected tab.
func (v *ViewState) Active() models.Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// Subscribe registers fn to run after every accepted selection.
func (v *ViewState) Subscribe(fn func(models.Tab)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// SelectTab makes tab the active tab and notifies subscribers. Unknown tabs
// are ignored and SelectTab reports false.
func (v *ViewState) SelectTab(tab models.Tab) bool {
	if !tab.Valid() {
		return false
	}

	v.notify.Lock()
	defer v.notify.Unlock()

	v.mu.Lock()
	v.active = tab
	listeners := slices.Clone(v.listeners)
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(tab)
	}
	return true
}
