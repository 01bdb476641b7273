package encoder

import "context"

// Encoder переводит произвольный текст в вектор фиксированной размерности.
// Prepare вызывается один раз перед построением индекса на полном корпусе
// текстов каталога; реализациям без состояния достаточно no-op.
// EncodeText обязан быть детерминированным после Prepare: одинаковый текст
// даёт одинаковый вектор в рамках одного подготовленного экземпляра.
type Encoder interface {
	Name() string
	Prepare(ctx context.Context, corpus []string) error
	EncodeText(ctx context.Context, text string) ([]float32, error)
}

// Factory создаёт свежий экземпляр энкодера для очередного построения индекса.
// Индекс привязывает каждый снимок векторов к экземпляру, которым они были
// получены, поэтому энкодеры с внутренним состоянием (словарь TF-IDF) не
// делятся между перестроениями. Stateless-реализации могут возвращать один
// и тот же экземпляр.
type Factory func() Encoder
