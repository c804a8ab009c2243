package product

import "time"

// Product — снапшот товара. Цена хранится в рублях целым числом.
type Product struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     int       `json:"price"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	SellerID  string    `json:"sellerId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary — облегченное представление товара для списка избранного.
type Summary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// FeedPage — страница курсорной ленты. NextCursor пуст,
// когда страница последняя.
type FeedPage struct {
	Items      []Product `json:"items"`
	NextCursor string    `json:"nextCursor,omitempty"`
}

func (p Product) Summary() Summary {
	return Summary{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}
}
