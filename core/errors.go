package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrReserveNotFound no reserve for the asset
	ErrReserveNotFound ErrorCode = 100100
	// ErrReserveInactive reserve is not active
	ErrReserveInactive ErrorCode = 100101
	// ErrInvalidAmount zero or malformed amount
	ErrInvalidAmount ErrorCode = 100102
	// ErrHealthFactorNotBelowThreshold borrower is solvent, liquidation refused
	ErrHealthFactorNotBelowThreshold ErrorCode = 100103
	// ErrUserDidNotBorrowSpecifiedAsset no current debt on the debt reserve
	ErrUserDidNotBorrowSpecifiedAsset ErrorCode = 100104
	// ErrInvalidCollateralToLiquidate collateral not enabled or not held by the borrower
	ErrInvalidCollateralToLiquidate ErrorCode = 100105
	// ErrInsufficientLiquidity reserve cannot cover the underlying withdrawal
	ErrInsufficientLiquidity ErrorCode = 100106
	// ErrOracleUnavailable price lookup failed for an asset with non-zero exposure
	ErrOracleUnavailable ErrorCode = 100107
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
