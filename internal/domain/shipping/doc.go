// Package shipping contains the Shipping bounded context.
//
// Rate records are matched against a request, narrowed by weight band and
// priced, then assembled into the options offered at checkout.
package shipping
