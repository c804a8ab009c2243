package product

import "gomarket/internal/domain/product"

type feedInput struct {
	Cursor string `query:"cursor" doc:"ID последнего увиденного товара"`
	Limit  int    `query:"limit" minimum:"0" maximum:"100"`
}

type feedOutput struct {
	Body product.FeedPage
}

type getInput struct {
	ID string `path:"id"`
}

type getOutput struct {
	Body product.Product
}

type favoritesOutput struct {
	Body []product.Summary
}

type AddFavoriteRequest struct {
	ProductID string `json:"productId"`
}

type addFavoriteInput struct {
	Body AddFavoriteRequest
}

type removeFavoriteInput struct {
	ID string `path:"id"`
}
