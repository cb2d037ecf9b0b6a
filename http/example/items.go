package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/xy-planning-network/override"
)

// An Item is one entry in the list.
type Item struct {
	ID   int
	Name string
	Done bool
}

// Items is an in-memory list of Item safe for concurrent use.
type Items struct {
	mu     sync.Mutex
	nextID int
	val    map[int]Item
}

func NewItems() *Items {
	return &Items{nextID: 1, val: make(map[int]Item)}
}

// Add appends an Item named name and returns it.
func (is *Items) Add(name string) Item {
	is.mu.Lock()
	defer is.mu.Unlock()

	item := Item{ID: is.nextID, Name: name}
	is.val[item.ID] = item
	is.nextID++

	return item
}

// List returns every Item, ordered by ID.
func (is *Items) List() []Item {
	is.mu.Lock()
	defer is.mu.Unlock()

	items := make([]Item, 0, len(is.val))
	for _, item := range is.val {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items
}

// Remove deletes the Item with id.
func (is *Items) Remove(id int) error {
	is.mu.Lock()
	defer is.mu.Unlock()

	if _, ok := is.val[id]; !ok {
		return fmt.Errorf("%w: item %d", override.ErrNotExist, id)
	}

	delete(is.val, id)
	return nil
}

// Rename sets the name of the Item with id.
func (is *Items) Rename(id int, name string) error {
	return is.update(id, func(item *Item) { item.Name = name })
}

// Toggle flips whether the Item with id is done.
func (is *Items) Toggle(id int) error {
	return is.update(id, func(item *Item) { item.Done = !item.Done })
}

func (is *Items) update(id int, fn func(*Item)) error {
	is.mu.Lock()
	defer is.mu.Unlock()

	item, ok := is.val[id]
	if !ok {
		return fmt.Errorf("%w: item %d", override.ErrNotExist, id)
	}

	fn(&item)
	is.val[id] = item

	return nil
}
