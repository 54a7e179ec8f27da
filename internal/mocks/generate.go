package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StatsProvider --dir ../domain/player --output domain/player --outpkg playermock --filename stats_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/selection --output domain/selection --outpkg selectionmock --filename repository_mock.go
