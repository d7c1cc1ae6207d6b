package constants

// Топология RabbitMQ для уведомлений о заявках. Очередь объявляет и
// биндит потребитель уведомлений, сервис знает только обменник и ключ.
const (
	ListingExchangeName = "listing_exchange"
	ListingExchangeType = "direct"

	InquiryRoutingKey = "inquiry.submitted"
)
