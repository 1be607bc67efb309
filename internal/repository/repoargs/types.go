package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	GuideRepoName        RepositoryName = "guide"
	PendingGuideRepoName RepositoryName = "pending_guide"
	CartRepoName         RepositoryName = "cart"
	InventoryRepoName    RepositoryName = "inventory"
)

type BatchExecQueryRow func(i int, err error)
