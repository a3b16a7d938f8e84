package entity

import "encoding/json"

// CartLine is one distinct sneaker in a cart and how many times it was added.
type CartLine struct {
	SneakerID int `json:"sneakerId"`
	Quantity  int `json:"quantity"`
}

// Cart is a multiset of sneaker ids kept in first-insertion order.
// On the wire it is the flat repeated-id list, e.g. [1,1,3].
type Cart struct {
	Lines []CartLine
}

func (c Cart) Clone() Cart {
	return Cart{Lines: append([]CartLine{}, c.Lines...)}
}

func (c Cart) index(sneakerID int) int {
	for i, line := range c.Lines {
		if line.SneakerID == sneakerID {
			return i
		}
	}
	return -1
}

// Add appends one occurrence of sneakerID.
func (c *Cart) Add(sneakerID int) {
	if i := c.index(sneakerID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{SneakerID: sneakerID, Quantity: 1})
}

// RemoveOne drops a single occurrence of sneakerID. Absent ids are ignored.
func (c *Cart) RemoveOne(sneakerID int) {
	i := c.index(sneakerID)
	if i < 0 {
		return
	}
	c.Lines[i].Quantity--
	if c.Lines[i].Quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// RemoveAll drops every occurrence of sneakerID.
func (c *Cart) RemoveAll(sneakerID int) {
	if i := c.index(sneakerID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// SetQuantity replaces the line for sneakerID with quantity fresh occurrences
// at the end of the cart. A zero quantity removes the line.
func (c *Cart) SetQuantity(sneakerID, quantity int) {
	c.RemoveAll(sneakerID)
	if quantity > 0 {
		c.Lines = append(c.Lines, CartLine{SneakerID: sneakerID, Quantity: quantity})
	}
}

// Quantity returns how many occurrences of sneakerID the cart holds.
func (c Cart) Quantity(sneakerID int) int {
	if i := c.index(sneakerID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

// IDs expands the cart into its flat repeated-id form.
func (c Cart) IDs() []int {
	ids := []int{}
	for _, line := range c.Lines {
		for i := 0; i < line.Quantity; i++ {
			ids = append(ids, line.SneakerID)
		}
	}
	return ids
}

func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.IDs())
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	c.Lines = nil
	for _, id := range ids {
		c.Add(id)
	}
	return nil
}
