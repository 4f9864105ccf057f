package domain

// ClassificationType labels one priced line of a maintenance request.
// The set is fixed; display labels for both locales live in locales/.
type ClassificationType string

const (
	ClassificationLabor     ClassificationType = "labor"
	ClassificationMaterials ClassificationType = "materials"
	ClassificationEquipment ClassificationType = "equipment"
	ClassificationTools     ClassificationType = "tools"
	ClassificationOther     ClassificationType = "other"
)

var AllClassificationTypes = []ClassificationType{
	ClassificationLabor,
	ClassificationMaterials,
	ClassificationEquipment,
	ClassificationTools,
	ClassificationOther,
}

func (c ClassificationType) IsValid() bool {
	switch c {
	case ClassificationLabor, ClassificationMaterials, ClassificationEquipment,
		ClassificationTools, ClassificationOther:
		return true
	default:
		return false
	}
}

// CostItem is a value object: one classification at a unit cost times a
// quantity. Total is derived and must always equal Cost * Quantity.
type CostItem struct {
	ClassificationType ClassificationType `json:"classificationType" db:"classification_type"`
	Cost               float64            `json:"cost" db:"cost"`
	Quantity           int                `json:"quantity" db:"quantity"`
	Total              float64            `json:"total" db:"total"`
}

// NewCostItem validates each field independently so the caller can surface
// the specific failure, and computes the line total.
func NewCostItem(classification ClassificationType, cost float64, quantity int) (CostItem, error) {
	if classification == "" {
		return CostItem{}, ErrMissingClassification
	}
	if !classification.IsValid() {
		return CostItem{}, ErrInvalidClassification
	}
	if cost <= 0 {
		return CostItem{}, ErrNonPositiveCost
	}
	if quantity <= 0 {
		return CostItem{}, ErrNonPositiveQuantity
	}

	return CostItem{
		ClassificationType: classification,
		Cost:               cost,
		Quantity:           quantity,
		Total:              cost * float64(quantity),
	}, nil
}

// ComputeTotal is the single place the request-level invariant
// totalCost == sum(item.total) is expressed. It is recomputed from the
// item sequence on every call, never cached.
func ComputeTotal(items []CostItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Total
	}
	return total
}

// CostLedger accumulates the ordered cost-item sequence for one request
// before submission. Duplicates of the same classification are kept as
// separate rows.
type CostLedger struct {
	items []CostItem
}

func NewCostLedger() *CostLedger {
	return &CostLedger{}
}

func (l *CostLedger) AddItem(classification ClassificationType, cost float64, quantity int) (CostItem, error) {
	item, err := NewCostItem(classification, cost, quantity)
	if err != nil {
		return CostItem{}, err
	}
	l.items = append(l.items, item)
	return item, nil
}

// RemoveItem drops the item at index. Out-of-range indices are a no-op.
func (l *CostLedger) RemoveItem(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

func (l *CostLedger) Items() []CostItem {
	return l.items
}

func (l *CostLedger) Len() int {
	return len(l.items)
}

func (l *CostLedger) Total() float64 {
	return ComputeTotal(l.items)
}
