package log

const (
	KeyAppName            = "app"
	KeyRequestID          = "requestId"
	KeyTraceID            = "traceId"
	KeySpanID             = "spanId"
	KeyProcess            = "process"
	KeyTag                = "tag"
	KeyRequest            = "request"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestProcessedAt = "requestProcessedAt"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeyResponseStatus     = "responseStatus"
	KeyConfig             = "config"
	KeyDbURL              = "dbUrl"
	KeyCacheKey           = "cacheKey"
	KeyJsonCache          = "jsonCache"
	KeyProductID          = "productId"
	KeyProduct            = "product"
	KeyProducts           = "products"
	KeyDeliveryOptionID   = "deliveryOptionId"
	KeyDeliveryOption     = "deliveryOption"
	KeyDeliveryOptions    = "deliveryOptions"
	KeyCartItem           = "cartItem"
	KeyCartItems          = "cartItems"
	KeyOrderID            = "orderId"
	KeyOrder              = "order"
	KeyOrders             = "orders"
	KeyPaymentSummary     = "paymentSummary"
	KeySeedResult         = "seedResult"
	KeySeedBase           = "seedBase"
	KeySearch             = "search"
	KeyExpand             = "expand"
)
