package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"
)

// MaxNameLength bounds menu item names so that listings stay one line wide.
const MaxNameLength = 64

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrDuplicateID reports an attempt to add an item whose id is already on the menu.
	ErrDuplicateID = errors.New("menu item id already exists")

	// ErrDuplicateName reports an attempt to add an item whose name is already on the menu.
	ErrDuplicateName = errors.New("menu item name already exists")
)

// Item is a single menu entry: a staff-assigned id and a display name.
//
// Item is an immutable value object. It is safe to copy and to share
// between goroutines.
type Item struct {
	id   int64
	name string

	guard guard.ConstructorGuard
}

// NewItem validates and creates a menu item. Surrounding whitespace is
// trimmed from the name; the remaining text is kept verbatim.
//
// Example:
//
//	item, err := menu.NewItem(14, "Iced Matcha")
//	if err != nil {
//	    return err
//	}
func NewItem(id int64, name string) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the staff-assigned identifier.
func (i Item) ID() int64 {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

func (i *Item) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("menu item name length", n, 1, MaxNameLength)
	}
	i.name = name
	return nil
}
