//go:generate mockgen -source=../publisher.go -destination=./mock_publisher.go -package=mocks

package mocks
