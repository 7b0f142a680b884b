package utils

import "shikhon/models"

// PriceQuote is the resolved price a buyer pays right now.
type PriceQuote struct {
	CurrentPrice       float64  `json:"currentPrice"`
	OriginalPrice      *float64 `json:"originalPrice,omitempty"`
	IsEarlybird        bool     `json:"isEarlybird"`
	EarlybirdSpotsLeft *int     `json:"earlybirdSpotsLeft,omitempty"`
}

// IsFree reports whether the resolved price bypasses payment entirely
func (q PriceQuote) IsFree() bool {
	return q.CurrentPrice == 0
}

// ResolveWorkshopPrice computes the price for a workshop given the number
// of already-confirmed enrollments. Earlybird wins while confirmed
// enrollments stay strictly below the configured count, then the offer
// price (with regular shown as the struck-through original), then regular.
func ResolveWorkshopPrice(w *models.Workshop, confirmedEnrollments int) PriceQuote {
	if w.PriceEarlybirds > 0 && w.EarlybirdsCount > 0 && confirmedEnrollments < w.EarlybirdsCount {
		spotsLeft := w.EarlybirdsCount - confirmedEnrollments
		return PriceQuote{
			CurrentPrice:       w.PriceEarlybirds,
			IsEarlybird:        true,
			EarlybirdSpotsLeft: &spotsLeft,
		}
	}

	if w.PriceOffer > 0 {
		original := w.PriceRegular
		return PriceQuote{
			CurrentPrice:  w.PriceOffer,
			OriginalPrice: &original,
		}
	}

	return PriceQuote{CurrentPrice: w.PriceRegular}
}

// RegularOnlyQuote is the degraded quote shown when the enrollment count
// cannot be read. It never blocks enrollment.
func RegularOnlyQuote(w *models.Workshop) PriceQuote {
	return PriceQuote{CurrentPrice: w.PriceRegular}
}

// ResolveCoursePrice computes the price for a course. Courses have no
// earlybird tier, only offer and regular.
func ResolveCoursePrice(c *models.Course) PriceQuote {
	if c.PriceOffer > 0 {
		original := c.PriceRegular
		return PriceQuote{
			CurrentPrice:  c.PriceOffer,
			OriginalPrice: &original,
		}
	}
	return PriceQuote{CurrentPrice: c.PriceRegular}
}
