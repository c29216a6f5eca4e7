package errors

var (
	ErrCustomerNotFound = &DomainError{
		Code:    "CUSTOMER_NOT_FOUND",
		Message: "customer not found",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be a positive number",
	}
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "insufficient wallet balance",
	}
	ErrInvalidKind = &DomainError{
		Code:    "INVALID_KIND",
		Message: "transaction type must be income or expense",
	}
	ErrInvalidPrice = &DomainError{
		Code:    "INVALID_PRICE",
		Message: "price must be greater than zero",
	}
	ErrInvalidDiscountRate = &DomainError{
		Code:    "INVALID_DISCOUNT_RATE",
		Message: "discount rate must be between 0 and 100",
	}
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "concurrent balance update lost, retry the operation",
	}
	ErrStorageUnavailable = &DomainError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: "storage is temporarily unavailable",
	}
)
