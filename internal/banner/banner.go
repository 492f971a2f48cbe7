package banner

// Promo is a promotional hero card shown on the home page. Headline and CTA
// are rendered over the image; the link targets a listing-page filter.
type Promo struct {
	PromoID  int     `json:"promoId"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Headline *string `json:"headline,omitempty"`
	CTA      *string `json:"cta,omitempty"`
	Link     *string `json:"link,omitempty"`
}
