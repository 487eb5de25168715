package wrap

import "github.com/treeq-dev/treeq/pkg/tree"

// failed is the terminal state a chain enters when a transformation
// reports an error. Every operation, OrElse included, returns the
// receiver unchanged; the carried error surfaces from Val. It
// implements all three wrapper surfaces so a failure propagates through
// scalar, node and collection chains alike.
type failed struct{ err error }

func (f *failed) Val() (any, error)          { return nil, f.err }
func (f *failed) OrElse(any) Wrapper         { return f }
func (f *failed) NonNull() Wrapper           { return f }
func (f *failed) Map(Fn) Wrapper             { return f }
func (f *failed) Apply(Fn) Wrapper           { return f }
func (f *failed) Require(Fn, string) Wrapper { return f }
func (f *failed) Dump(map[string]Fn) Wrapper { return f }
func (f *failed) Index(any) Wrapper          { return f }
func (f *failed) Truthy() bool               { return false }
func (f *failed) IsNull() bool               { return false }
func (f *failed) String() string             { return "Failed(" + f.err.Error() + ")" }

func (f *failed) Attr(string) Wrapper  { return f }
func (f *failed) Call(...any) Wrapper  { return f }
func (f *failed) Gt(any) Wrapper       { return f }
func (f *failed) Ge(any) Wrapper       { return f }
func (f *failed) Lt(any) Wrapper       { return f }
func (f *failed) Le(any) Wrapper       { return f }
func (f *failed) Eq(any) Wrapper       { return f }
func (f *failed) Ne(any) Wrapper       { return f }
func (f *failed) Add(any) Wrapper      { return f }
func (f *failed) Sub(any) Wrapper      { return f }
func (f *failed) Mul(any) Wrapper      { return f }
func (f *failed) Div(any) Wrapper      { return f }
func (f *failed) FloorDiv(any) Wrapper { return f }
func (f *failed) Mod(any) Wrapper      { return f }
func (f *failed) Pow(any) Wrapper      { return f }

func (f *failed) First() Wrapper                             { return f }
func (f *failed) At(int) Wrapper                             { return f }
func (f *failed) Slice(int, int) CollectionWrapper           { return f }
func (f *failed) Stride(int, int, int) CollectionWrapper     { return f }
func (f *failed) Each(...Fn) CollectionWrapper               { return f }
func (f *failed) Filter(Fn) CollectionWrapper                { return f }
func (f *failed) TakeWhile(Fn) CollectionWrapper             { return f }
func (f *failed) DropWhile(Fn) CollectionWrapper             { return f }
func (f *failed) Count() Wrapper                             { return f }
func (f *failed) Zip(...CollectionWrapper) CollectionWrapper { return f }
func (f *failed) DictZip(any) Wrapper                        { return f }
func (f *failed) All() Wrapper                               { return f }
func (f *failed) Any() Wrapper                               { return f }
func (f *failed) None() Wrapper                              { return f }
func (f *failed) Items() []Wrapper                           { return nil }
func (f *failed) Vals() ([]any, error)                       { return nil, f.err }

func (f *failed) Name() Wrapper  { return f }
func (f *failed) Text() Wrapper  { return f }
func (f *failed) Attrs() Wrapper { return f }
func (f *failed) HTML() Wrapper  { return f }

func (f *failed) Parent() NodeWrapper      { return f }
func (f *failed) NextSibling() NodeWrapper { return f }
func (f *failed) PrevSibling() NodeWrapper { return f }

func (f *failed) Children() CollectionWrapper     { return f }
func (f *failed) Contents() CollectionWrapper     { return f }
func (f *failed) Descendants() CollectionWrapper  { return f }
func (f *failed) Parents() CollectionWrapper      { return f }
func (f *failed) NextSiblings() CollectionWrapper { return f }
func (f *failed) PrevSiblings() CollectionWrapper { return f }

func (f *failed) Find(...tree.Criterion) NodeWrapper            { return f }
func (f *failed) FindParent(...tree.Criterion) NodeWrapper      { return f }
func (f *failed) FindNextSibling(...tree.Criterion) NodeWrapper { return f }
func (f *failed) FindPrevSibling(...tree.Criterion) NodeWrapper { return f }

func (f *failed) FindAll(...tree.Criterion) CollectionWrapper          { return f }
func (f *failed) FindParents(...tree.Criterion) CollectionWrapper      { return f }
func (f *failed) FindNextSiblings(...tree.Criterion) CollectionWrapper { return f }
func (f *failed) FindPrevSiblings(...tree.Criterion) CollectionWrapper { return f }

func (f *failed) Select(string) CollectionWrapper { return f }

// Equal supports comparison in tests.
func (f *failed) Equal(other any) bool {
	o, ok := other.(*failed)
	return ok && f.err.Error() == o.err.Error()
}
