package repoargs

type CreateGuide struct {
	Subject string
	Topic   string
	Price   int64
	Creator string
	Link    string
}

type GuideListOptions struct {
	// OrderByPrice сортировка по возрастанию цены. По умолчанию порядок вставки.
	OrderByPrice bool
}
