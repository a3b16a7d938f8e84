package entity

type User struct {
	UserID             int    `json:"userId"`
	UserName           string `json:"userName"`
	Email              string `json:"email"`
	Password           string `json:"-"` // Stored and compared in plaintext.
	FavoriteSneakerIDs []int  `json:"favoriteSneakerIds"`
	Cart               Cart   `json:"cart"`
}

// Clone returns a deep copy so callers can mutate it without touching the stored record.
func (u User) Clone() User {
	out := u
	out.FavoriteSneakerIDs = append([]int{}, u.FavoriteSneakerIDs...)
	out.Cart = u.Cart.Clone()
	return out
}

// HasFavorite reports whether sneakerID is already in the favorites list.
func (u User) HasFavorite(sneakerID int) bool {
	for _, id := range u.FavoriteSneakerIDs {
		if id == sneakerID {
			return true
		}
	}
	return false
}

// RemoveFavorite drops sneakerID from the favorites list, if present.
func (u *User) RemoveFavorite(sneakerID int) {
	kept := u.FavoriteSneakerIDs[:0]
	for _, id := range u.FavoriteSneakerIDs {
		if id != sneakerID {
			kept = append(kept, id)
		}
	}
	u.FavoriteSneakerIDs = kept
}
