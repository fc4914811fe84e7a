// Package common holds small generic helpers shared by the unwrapgen packages.
package common
