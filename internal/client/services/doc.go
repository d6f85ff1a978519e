// Package services contains the application services of the storefront
// client: the session manager (token and identity lifecycle), the
// client-local cart, the catalog cache and the checkout coordinator.
//
// All services are driven by the single interactive goroutine; none of them
// is safe for concurrent use and none needs to be.
package services
