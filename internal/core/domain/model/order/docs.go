// Package order contains the Order aggregate and its supporting value
// objects.
//
// Order is the aggregate root. It owns its Lines (product, quantity and a
// price snapshotted at write time) and carries the derived pricing fields
// together with the fulfillment timestamps. The aggregate enforces:
//
//   - price == shippingCosts + sum of line subtotals
//   - timestamps advance monotonically: createdAt <= startedAt <= sentAt <= deliveredAt
//   - fulfillment transitions follow Pending -> InProcess -> Sent -> Delivered,
//     each timestamp is set exactly once and never reset
//
// Lines are replaced as a whole on update; they are never diffed or edited
// in place. A line's unit price is a snapshot, not a live catalog reference,
// so later catalog price changes do not alter historical orders.
package order
