package merge

import (
	"math"
	"strconv"
	"strings"

	"olist/internal/dataset"
)

type paymentGroup struct {
	types           []string
	typeSeen        map[string]struct{}
	installments    float64
	hasInstallments bool
	total           float64
}

// aggregatePayments rolls payments up to one row per order: distinct payment
// types joined with ", " in first-seen order, the maximum installment count,
// and the summed payment value.
func aggregatePayments(payments *dataset.Table) (*dataset.Table, error) {
	groups := make(map[string]*paymentGroup, payments.Len())
	var order []string
	for row := 0; row < payments.Len(); row++ {
		orderID := payments.Value(row, "order_id")
		if orderID == "" {
			continue
		}
		group, ok := groups[orderID]
		if !ok {
			group = &paymentGroup{typeSeen: make(map[string]struct{}, 2)}
			groups[orderID] = group
			order = append(order, orderID)
		}
		if payType := payments.Value(row, "payment_type"); payType != "" {
			if _, seen := group.typeSeen[payType]; !seen {
				group.typeSeen[payType] = struct{}{}
				group.types = append(group.types, payType)
			}
		}
		if installments, ok := parseFloat(payments.Value(row, "payment_installments")); ok {
			if !group.hasInstallments || installments > group.installments {
				group.installments = installments
			}
			group.hasInstallments = true
		}
		if value, ok := parseFloat(payments.Value(row, "payment_value")); ok {
			group.total += value
		}
	}

	aggregated, err := dataset.New("payments_agg", []string{
		"order_id", "payment_type", "payment_installments", "payment_value",
	})
	if err != nil {
		return nil, err
	}
	for _, orderID := range order {
		group := groups[orderID]
		installments := ""
		if group.hasInstallments {
			installments = formatFloat(group.installments)
		}
		row := []string{
			orderID,
			strings.Join(group.types, ", "),
			installments,
			formatMoney(group.total),
		}
		if err := aggregated.Append(row); err != nil {
			return nil, err
		}
	}
	return aggregated, nil
}

type reviewGroup struct {
	scoreSum   float64
	scoreCount int
	firstDate  string
	firstText  string
}

// aggregateReviews rolls reviews up to one row per order: mean score, and
// the first non-empty creation date and comment message in row order.
func aggregateReviews(reviews *dataset.Table) (*dataset.Table, error) {
	groups := make(map[string]*reviewGroup, reviews.Len())
	var order []string
	for row := 0; row < reviews.Len(); row++ {
		orderID := reviews.Value(row, "order_id")
		if orderID == "" {
			continue
		}
		group, ok := groups[orderID]
		if !ok {
			group = &reviewGroup{}
			groups[orderID] = group
			order = append(order, orderID)
		}
		if group.firstDate == "" {
			group.firstDate = reviews.Value(row, "review_creation_date")
		}
		if group.firstText == "" {
			group.firstText = reviews.Value(row, "review_comment_message")
		}
		if score, ok := parseFloat(reviews.Value(row, "review_score")); ok {
			group.scoreSum += score
			group.scoreCount++
		}
	}

	aggregated, err := dataset.New("reviews_agg", []string{
		"order_id", "review_score", "review_creation_date", "review_comment_message",
	})
	if err != nil {
		return nil, err
	}
	for _, orderID := range order {
		group := groups[orderID]
		score := ""
		if group.scoreCount > 0 {
			score = formatMoney(group.scoreSum / float64(group.scoreCount))
		}
		row := []string{orderID, score, group.firstDate, group.firstText}
		if err := aggregated.Append(row); err != nil {
			return nil, err
		}
	}
	return aggregated, nil
}

func parseFloat(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatMoney rounds to two decimals and trims trailing zeros, keeping
// float-sum artifacts out of the CSV output.
func formatMoney(value float64) string {
	return formatFloat(math.Round(value*100) / 100)
}
