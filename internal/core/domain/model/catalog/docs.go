// Package catalog contains the reference data the order core prices against:
// products and the restaurants that offer them.
//
// Products are strictly read-only from the order core's perspective; their
// current price is snapshotted onto order lines at write time. Restaurant is
// read-only except for one derived field, the average service time, which is
// recomputed from delivered orders.
package catalog
