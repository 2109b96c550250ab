package catalog

// UtilityDoc holds reference documentation for one React Flow utility function.
type UtilityDoc struct {
	Name        string
	Signature   string
	Description string
	Returns     string
	Usage       string
}

var utilityDocs = []UtilityDoc{
	{
		Name:        "addEdge",
		Signature:   "addEdge<EdgeType extends Edge>(edgeParams: EdgeType | Connection, edges: EdgeType[]): EdgeType[]",
		Description: "Turns a Connection into an Edge (generating an id) and appends it to the edge array, skipping duplicates and invalid connections. The standard body of an onConnect handler.",
		Returns:     "a new edge array containing the added edge.",
		Usage: `
const onConnect = useCallback(
  (connection) => setEdges((eds) => addEdge(connection, eds)),
  [setEdges],
);`,
	},
	{
		Name:        "applyNodeChanges",
		Signature:   "applyNodeChanges<NodeType extends Node>(changes: NodeChange[], nodes: NodeType[]): NodeType[]",
		Description: "Applies a batch of node change events (position, dimensions, selection, add, remove, replace) to a node array. Use it inside onNodesChange in controlled flows.",
		Returns:     "a new node array with the changes applied.",
	},
	{
		Name:        "applyEdgeChanges",
		Signature:   "applyEdgeChanges<EdgeType extends Edge>(changes: EdgeChange[], edges: EdgeType[]): EdgeType[]",
		Description: "Applies a batch of edge change events to an edge array; the edge counterpart of applyNodeChanges.",
		Returns:     "a new edge array with the changes applied.",
	},
	{
		Name:        "getBezierPath",
		Signature:   "getBezierPath({ sourceX, sourceY, sourcePosition?, targetX, targetY, targetPosition?, curvature? }): [path: string, labelX: number, labelY: number, offsetX: number, offsetY: number]",
		Description: "Computes the SVG path of a bezier edge together with the point where a label should sit.",
		Returns:     "a [path, labelX, labelY, offsetX, offsetY] tuple.",
		Usage: `
const [path, labelX, labelY] = getBezierPath({ sourceX, sourceY, targetX, targetY });
return <BaseEdge path={path} labelX={labelX} labelY={labelY} />;`,
	},
	{
		Name:        "getSmoothStepPath",
		Signature:   "getSmoothStepPath({ sourceX, sourceY, sourcePosition?, targetX, targetY, targetPosition?, borderRadius?, offset? }): [path: string, labelX: number, labelY: number, offsetX: number, offsetY: number]",
		Description: "Computes a stepped path with rounded corners between two points. Set borderRadius to 0 for hard corners.",
		Returns:     "a [path, labelX, labelY, offsetX, offsetY] tuple.",
	},
	{
		Name:        "getStraightPath",
		Signature:   "getStraightPath({ sourceX, sourceY, targetX, targetY }): [path: string, labelX: number, labelY: number, offsetX: number, offsetY: number]",
		Description: "Computes a straight line path between two points.",
		Returns:     "a [path, labelX, labelY, offsetX, offsetY] tuple.",
	},
	{
		Name:        "getSimpleBezierPath",
		Signature:   "getSimpleBezierPath({ sourceX, sourceY, sourcePosition?, targetX, targetY, targetPosition? }): [path: string, labelX: number, labelY: number, offsetX: number, offsetY: number]",
		Description: "Like getBezierPath but without curvature control points at the handles, producing a simpler curve.",
		Returns:     "a [path, labelX, labelY, offsetX, offsetY] tuple.",
	},
	{
		Name:        "getNodesBounds",
		Signature:   "getNodesBounds(nodes: Node[], params?: { nodeOrigin?: NodeOrigin }): Rect",
		Description: "Computes the bounding rectangle that encloses all given nodes, typically fed into getViewportForBounds for export or custom fit logic.",
		Returns:     "the enclosing Rect in flow coordinates.",
	},
	{
		Name:        "getViewportForBounds",
		Signature:   "getViewportForBounds(bounds: Rect, width: number, height: number, minZoom: number, maxZoom: number, padding?: number): Viewport",
		Description: "Computes the viewport that displays the given bounds inside a container of the given size, respecting the zoom limits. The pairing of getNodesBounds and this function is how image export sizes the canvas.",
		Returns:     "the { x, y, zoom } viewport.",
	},
	{
		Name:        "getIncomers",
		Signature:   "getIncomers(node: Node | { id: string }, nodes: Node[], edges: Edge[]): Node[]",
		Description: "Returns every node with an edge pointing at the given node.",
		Returns:     "the direct upstream nodes.",
	},
	{
		Name:        "getOutgoers",
		Signature:   "getOutgoers(node: Node | { id: string }, nodes: Node[], edges: Edge[]): Node[]",
		Description: "Returns every node the given node points at.",
		Returns:     "the direct downstream nodes.",
	},
	{
		Name:        "getConnectedEdges",
		Signature:   "getConnectedEdges(nodes: Node[], edges: Edge[]): Edge[]",
		Description: "Returns every edge whose source or target is in the given node set, useful when deleting nodes together with their edges.",
		Returns:     "the edges connected to the node set.",
	},
	{
		Name:        "isNode",
		Signature:   "isNode(element: unknown): element is Node",
		Description: "Type guard that reports whether a value is a Node.",
		Returns:     "true if the value is a node.",
	},
	{
		Name:        "isEdge",
		Signature:   "isEdge(element: unknown): element is Edge",
		Description: "Type guard that reports whether a value is an Edge.",
		Returns:     "true if the value is an edge.",
	},
}
