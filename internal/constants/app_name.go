package constants

const (
	AppStorefront  = "storefront"
	AppMigrate     = "storefront-migrate"
	AppSeed        = "storefront-seed"
	AppReset       = "storefront-reset"
	AppMainCommand = "main storefront"

	AppProductService        = "product-service"
	AppDeliveryOptionService = "delivery-option-service"
	AppCartService           = "cart-service"
	AppOrderService          = "order-service"
	AppPaymentService        = "payment-service"
	AppResetService          = "reset-service"
)
