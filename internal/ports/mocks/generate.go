//go:generate mockgen -source=../screening_repository.go -destination=./mock_screening_repository.go -package=mocks
//go:generate mockgen -source=../screening_cache.go      -destination=./mock_screening_cache.go      -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../verdict_publisher.go    -destination=./mock_verdict_publisher.go    -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks
//go:generate mockgen -source=../screening_service.go    -destination=./mock_screening_service.go    -package=mocks

package mocks
