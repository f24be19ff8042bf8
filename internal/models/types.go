package models

// Identity is the authenticated viewer. ID is GitHub's opaque node id.
type Identity struct {
	Login string
	ID    string
}

type RepositoryRef struct {
	Name  string
	Owner string
}

func (r RepositoryRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// CommitHistory holds the committed-date strings of one repository's
// default-branch commits authored by the viewer.
type CommitHistory struct {
	Repo           RepositoryRef
	CommittedDates []string
}

type DocumentRevision struct {
	Owner   string
	Repo    string
	Path    string
	Content string
	SHA     string
}
