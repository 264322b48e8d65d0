//go:generate mockgen -source=../catalog_repository.go -destination=./mock_catalog_repository.go -package=mocks
//go:generate mockgen -source=../session_store.go      -destination=./mock_session_store.go      -package=mocks
//go:generate mockgen -source=../checkout_publisher.go -destination=./mock_checkout_publisher.go -package=mocks
//go:generate mockgen -source=../validator.go          -destination=./mock_validator.go          -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks
//go:generate mockgen -source=../basket_service.go     -destination=./mock_basket_service.go     -package=mocks

package mocks
