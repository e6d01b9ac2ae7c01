package shopping

import (
	"time"

	"github.com/pantryline/pantryline/internal/domain"
)

// CheckedItemView is the flattened read model of a checked-off ingredient.
type CheckedItemView struct {
	IngredientID   string              `json:"ingredient_id"`
	IngredientName string              `json:"ingredient_name"`
	CheckedAt      time.Time           `json:"checked_at"`
	StockStatus    domain.StockStatus  `json:"stock_status"`
	ExpiryStatus   domain.ExpiryStatus `json:"expiry_status"`
	NeedsAttention bool                `json:"needs_attention"`
	Priority       float64             `json:"priority"`
}

// SessionProjection is the read model returned by every session command and
// query. It carries derived values (item counts, attention flags) so callers
// never reach into the aggregate.
type SessionProjection struct {
	ID                 string               `json:"id"`
	UserID             string               `json:"user_id"`
	Status             domain.SessionStatus `json:"status"`
	StartedAt          time.Time            `json:"started_at"`
	CompletedAt        *time.Time           `json:"completed_at,omitempty"`
	DeviceType         *domain.DeviceType   `json:"device_type,omitempty"`
	Location           *domain.Location     `json:"location,omitempty"`
	AbandonReason      string               `json:"abandon_reason,omitempty"`
	CheckedItems       []CheckedItemView    `json:"checked_items"`
	ItemCount          int                  `json:"item_count"`
	NeedsAttentionCount int                 `json:"needs_attention_count"`
}

// NewSessionProjection builds the read model from a session aggregate.
func NewSessionProjection(s *domain.ShoppingSession) *SessionProjection {
	items := make([]CheckedItemView, 0, len(s.CheckedItems))
	attention := 0
	for _, item := range s.CheckedItems {
		needs := item.NeedsAttention()
		if needs {
			attention++
		}
		items = append(items, CheckedItemView{
			IngredientID:   item.IngredientID().String(),
			IngredientName: item.IngredientName(),
			CheckedAt:      item.CheckedAt(),
			StockStatus:    item.StockStatus(),
			ExpiryStatus:   item.ExpiryStatus(),
			NeedsAttention: needs,
			Priority:       item.Priority(),
		})
	}

	return &SessionProjection{
		ID:                  s.ID.String(),
		UserID:              s.UserID.String(),
		Status:              s.Status,
		StartedAt:           s.StartedAt,
		CompletedAt:         s.CompletedAt,
		DeviceType:          s.DeviceType,
		Location:            s.Location,
		AbandonReason:       s.AbandonReason,
		CheckedItems:        items,
		ItemCount:           len(items),
		NeedsAttentionCount: attention,
	}
}
