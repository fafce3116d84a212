package resolve

// jdk lists the library types the resolver knows without a classpath. It
// plays the part of a reflection-backed type solver restricted to the
// packages ordinary application code imports most.
var jdk = map[string]bool{}

func init() {
	for pkg, names := range map[string][]string{
		"java.lang": {
			"AutoCloseable", "Boolean", "Byte", "CharSequence", "Character", "Class",
			"ClassCastException", "Cloneable", "Comparable", "Deprecated", "Double", "Enum",
			"Error", "Exception", "Float", "FunctionalInterface", "IllegalArgumentException",
			"IllegalStateException", "IndexOutOfBoundsException", "Integer", "Iterable",
			"Long", "Math", "NullPointerException", "Number", "NumberFormatException",
			"Object", "Override", "Record", "Runnable", "RuntimeException", "SafeVarargs",
			"Short", "String", "StringBuffer", "StringBuilder", "SuppressWarnings", "System",
			"Thread", "Throwable", "UnsupportedOperationException", "Void",
		},
		"java.util": {
			"AbstractList", "ArrayDeque", "ArrayList", "Arrays", "BitSet", "Calendar",
			"Collection", "Collections", "Comparator", "ConcurrentModificationException",
			"Date", "Deque", "EnumMap", "EnumSet", "HashMap", "HashSet", "Iterator",
			"LinkedHashMap", "LinkedHashSet", "LinkedList", "List", "ListIterator", "Locale",
			"Map", "Map.Entry", "NavigableMap", "NavigableSet", "NoSuchElementException",
			"Objects", "Optional", "OptionalInt", "PriorityQueue", "Properties", "Queue",
			"Random", "Scanner", "Set", "SortedMap", "SortedSet", "Stack", "StringJoiner",
			"TreeMap", "TreeSet", "UUID", "Vector",
		},
		"java.util.function": {
			"BiConsumer", "BiFunction", "BiPredicate", "BinaryOperator", "BooleanSupplier",
			"Consumer", "Function", "IntBinaryOperator", "IntConsumer", "IntFunction",
			"IntPredicate", "IntSupplier", "IntUnaryOperator", "Predicate", "Supplier",
			"ToIntFunction", "ToLongFunction", "UnaryOperator",
		},
		"java.util.stream": {
			"Collector", "Collectors", "DoubleStream", "IntStream", "LongStream", "Stream",
		},
		"java.io": {
			"BufferedReader", "BufferedWriter", "Closeable", "File", "FileInputStream",
			"FileOutputStream", "FileReader", "FileWriter", "IOException", "InputStream",
			"InputStreamReader", "OutputStream", "PrintStream", "PrintWriter", "Reader",
			"Serializable", "UncheckedIOException", "Writer",
		},
		"java.nio.file": {
			"Files", "Path", "Paths",
		},
	} {
		for _, name := range names {
			jdk[pkg+"."+name] = true
		}
	}
}
