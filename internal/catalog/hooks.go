package catalog

// HookDoc holds reference documentation for one React Flow hook.
type HookDoc struct {
	Name        string
	Category    string
	Signature   string
	Description string
	Returns     string
	Usage       string
}

// Hook categories.
const (
	HookCategoryCore        = "core"
	HookCategoryState       = "state"
	HookCategoryViewport    = "viewport"
	HookCategoryInteraction = "interaction"
)

var hookDocs = []HookDoc{
	{
		Name:      "useReactFlow",
		Category:  HookCategoryCore,
		Signature: "useReactFlow<NodeType extends Node, EdgeType extends Edge>(): ReactFlowInstance<NodeType, EdgeType>",
		Description: "Returns the ReactFlow instance with imperative methods for querying and " +
			"updating the flow: getNodes, setNodes, addNodes, fitView, zoomTo, screenToFlowPosition " +
			"and more. The component must be inside a ReactFlowProvider or the ReactFlow component itself.",
		Returns: "the ReactFlowInstance for the nearest flow.",
		Usage: `
const { fitView, addNodes } = useReactFlow();
addNodes({ id: 'new', position: { x: 0, y: 0 }, data: { label: 'New' } });
fitView({ duration: 300 });`,
	},
	{
		Name:        "useNodeId",
		Category:    HookCategoryCore,
		Signature:   "useNodeId(): string | null",
		Description: "Returns the id of the node the calling component is rendered inside, or null outside a node. Useful in deeply nested custom node internals.",
		Returns:     "the current node id, or null.",
	},
	{
		Name:        "useNodesInitialized",
		Category:    HookCategoryCore,
		Signature:   "useNodesInitialized(options?: { includeHiddenNodes: boolean }): boolean",
		Description: "Reports whether every node has been measured and assigned a size. Layouting code should wait for this before reading node dimensions.",
		Returns:     "true once all nodes are measured.",
	},
	{
		Name:        "useUpdateNodeInternals",
		Category:    HookCategoryCore,
		Signature:   "useUpdateNodeInternals(): (nodeId: string | string[]) => void",
		Description: "Returns a function that tells React Flow to re-measure a node's handles and dimensions. Call it after programmatically adding, removing, or repositioning handles.",
		Returns:     "an update function taking one or more node ids.",
	},
	{
		Name:        "useNodes",
		Category:    HookCategoryState,
		Signature:   "useNodes<NodeType extends Node>(): NodeType[]",
		Description: "Subscribes to the full nodes array. The component re-renders on every node change, including positions while dragging, so prefer narrower selectors for hot paths.",
		Returns:     "the current array of nodes.",
	},
	{
		Name:        "useEdges",
		Category:    HookCategoryState,
		Signature:   "useEdges<EdgeType extends Edge>(): EdgeType[]",
		Description: "Subscribes to the full edges array and re-renders whenever any edge changes.",
		Returns:     "the current array of edges.",
	},
	{
		Name:      "useNodesState",
		Category:  HookCategoryState,
		Signature: "useNodesState<NodeType extends Node>(initialNodes: NodeType[]): [NodeType[], Dispatch<SetStateAction<NodeType[]>>, OnNodesChange<NodeType>]",
		Description: "Convenience state hook for controlled flows: returns the nodes, a setter, " +
			"and an onNodesChange handler that already applies changes.",
		Returns: "a [nodes, setNodes, onNodesChange] tuple.",
		Usage: `
const [nodes, setNodes, onNodesChange] = useNodesState(initialNodes);
const [edges, setEdges, onEdgesChange] = useEdgesState(initialEdges);

return <ReactFlow nodes={nodes} edges={edges} onNodesChange={onNodesChange} onEdgesChange={onEdgesChange} />;`,
	},
	{
		Name:        "useEdgesState",
		Category:    HookCategoryState,
		Signature:   "useEdgesState<EdgeType extends Edge>(initialEdges: EdgeType[]): [EdgeType[], Dispatch<SetStateAction<EdgeType[]>>, OnEdgesChange<EdgeType>]",
		Description: "Convenience state hook for controlled flows; the edge counterpart of useNodesState.",
		Returns:     "an [edges, setEdges, onEdgesChange] tuple.",
	},
	{
		Name:        "useNodesData",
		Category:    HookCategoryState,
		Signature:   "useNodesData<NodeType extends Node>(nodeIds: string | string[]): Pick<NodeType, 'id' | 'type' | 'data'> | null",
		Description: "Subscribes to the data objects of specific nodes only, which avoids the whole-array re-renders of useNodes. The usual way to let one node react to another node's data.",
		Returns:     "the data of the requested node(s), or null when absent.",
	},
	{
		Name:        "useStore",
		Category:    HookCategoryState,
		Signature:   "useStore<T>(selector: (state: ReactFlowState) => T, equalityFn?: (a: T, b: T) => boolean): T",
		Description: "Subscribes to a slice of the internal store with a selector, the escape hatch for state the public hooks do not expose. Selectors should be memoized or defined outside the component.",
		Returns:     "the selected state slice.",
		Usage: `
const nodeCount = useStore((s) => s.nodes.length);`,
	},
	{
		Name:        "useStoreApi",
		Category:    HookCategoryState,
		Signature:   "useStoreApi(): StoreApi<ReactFlowState>",
		Description: "Returns the store object itself for imperative getState/setState access without subscribing to updates.",
		Returns:     "the zustand store api.",
	},
	{
		Name:        "useViewport",
		Category:    HookCategoryViewport,
		Signature:   "useViewport(): Viewport",
		Description: "Subscribes to the current viewport and re-renders on every pan and zoom. The component must be a child of ReactFlowProvider.",
		Returns:     "the current { x, y, zoom } viewport.",
		Usage: `
const { x, y, zoom } = useViewport();`,
	},
	{
		Name:        "useOnViewportChange",
		Category:    HookCategoryViewport,
		Signature:   "useOnViewportChange({ onStart, onChange, onEnd }: UseOnViewportChangeOptions): void",
		Description: "Registers callbacks for viewport movement start, change, and end without re-rendering the calling component.",
		Returns:     "nothing; the callbacks receive the Viewport.",
	},
	{
		Name:        "useKeyPress",
		Category:    HookCategoryInteraction,
		Signature:   "useKeyPress(keyCode: KeyCode, options?: UseKeyPressOptions): boolean",
		Description: "Tracks whether a key or key combination is pressed. Accepts single keys, combinations like 'Meta+s', and arrays of alternatives.",
		Returns:     "true while the key is held.",
	},
	{
		Name:        "useOnSelectionChange",
		Category:    HookCategoryInteraction,
		Signature:   "useOnSelectionChange({ onChange }: { onChange: OnSelectionChangeFunc }): void",
		Description: "Registers a callback fired whenever the set of selected nodes or edges changes. The callback must be memoized with useCallback.",
		Returns:     "nothing; onChange receives { nodes, edges }.",
	},
	{
		Name:        "useConnection",
		Category:    HookCategoryInteraction,
		Signature:   "useConnection(): ConnectionState",
		Description: "Subscribes to the in-progress connection while the user drags from a handle, including the source handle and current pointer position.",
		Returns:     "the live connection state; inProgress is false when idle.",
	},
	{
		Name:        "useHandleConnections",
		Category:    HookCategoryInteraction,
		Signature:   "useHandleConnections({ type, id?, nodeId? }: UseHandleConnectionsParams): Connection[]",
		Description: "Returns the connections attached to a specific handle of the current node, useful for limiting how many edges a handle accepts.",
		Returns:     "the connections for the handle.",
	},
}
