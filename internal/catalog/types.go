package catalog

// TypeDoc holds the definition of one React Flow TypeScript type.
type TypeDoc struct {
	Name        string
	Category    string
	Description string
	Definition  string
	// Variants lists the members of a discriminated union type, keyed by
	// the value of its discriminant field.
	Variants []ChangeVariant
}

// ChangeVariant is one member of a discriminated union such as NodeChange.
type ChangeVariant struct {
	Kind   string
	Fields string
}

// Type categories.
const (
	TypeCategoryNodes    = "nodes"
	TypeCategoryEdges    = "edges"
	TypeCategoryGeometry = "geometry"
	TypeCategoryViewport = "viewport"
	TypeCategoryInstance = "instance"
)

var typeDocs = []TypeDoc{
	{
		Name:        "Node",
		Category:    TypeCategoryNodes,
		Description: "A single node in the flow. Everything app-specific lives in data; the rest is position and behavior flags.",
		Definition: `
type Node<NodeData extends Record<string, unknown> = Record<string, unknown>> = {
  id: string;
  position: XYPosition;
  data: NodeData;
  type?: string;
  sourcePosition?: Position;
  targetPosition?: Position;
  hidden?: boolean;
  selected?: boolean;
  dragging?: boolean;
  draggable?: boolean;
  selectable?: boolean;
  connectable?: boolean;
  deletable?: boolean;
  width?: number;
  height?: number;
  parentId?: string;
  extent?: 'parent' | CoordinateExtent;
  zIndex?: number;
};`,
	},
	{
		Name:        "Edge",
		Category:    TypeCategoryEdges,
		Description: "A connection between a source and a target node, optionally between specific handles.",
		Definition: `
type Edge<EdgeData extends Record<string, unknown> = Record<string, unknown>> = {
  id: string;
  source: string;
  target: string;
  sourceHandle?: string | null;
  targetHandle?: string | null;
  type?: string;
  data?: EdgeData;
  label?: string | ReactNode;
  animated?: boolean;
  hidden?: boolean;
  selected?: boolean;
  deletable?: boolean;
  markerStart?: EdgeMarkerType;
  markerEnd?: EdgeMarkerType;
  zIndex?: number;
};`,
	},
	{
		Name:        "NodeProps",
		Category:    TypeCategoryNodes,
		Description: "The props a custom node component receives from React Flow.",
		Definition: `
type NodeProps<NodeType extends Node = Node> = {
  id: string;
  data: NodeType['data'];
  type: string;
  selected: boolean;
  dragging: boolean;
  isConnectable: boolean;
  positionAbsoluteX: number;
  positionAbsoluteY: number;
  sourcePosition?: Position;
  targetPosition?: Position;
  width?: number;
  height?: number;
  zIndex: number;
};`,
	},
	{
		Name:        "EdgeProps",
		Category:    TypeCategoryEdges,
		Description: "The props a custom edge component receives, primarily the source and target coordinates needed by the path helpers.",
		Definition: `
type EdgeProps<EdgeType extends Edge = Edge> = {
  id: string;
  source: string;
  target: string;
  sourceX: number;
  sourceY: number;
  targetX: number;
  targetY: number;
  sourcePosition: Position;
  targetPosition: Position;
  data?: EdgeType['data'];
  selected?: boolean;
  animated?: boolean;
  label?: string | ReactNode;
  markerStart?: string;
  markerEnd?: string;
  interactionWidth?: number;
};`,
	},
	{
		Name:        "NodeChange",
		Category:    TypeCategoryNodes,
		Description: "A change event emitted through onNodesChange. Apply a batch of them with applyNodeChanges.",
		Definition: `
type NodeChange =
  | NodePositionChange
  | NodeDimensionChange
  | NodeSelectionChange
  | NodeRemoveChange
  | NodeAddChange
  | NodeReplaceChange;`,
		Variants: []ChangeVariant{
			{Kind: "position", Fields: "id, position?, dragging?"},
			{Kind: "dimensions", Fields: "id, dimensions?, resizing?, setAttributes?"},
			{Kind: "select", Fields: "id, selected"},
			{Kind: "remove", Fields: "id"},
			{Kind: "add", Fields: "item, index?"},
			{Kind: "replace", Fields: "id, item"},
		},
	},
	{
		Name:        "EdgeChange",
		Category:    TypeCategoryEdges,
		Description: "A change event emitted through onEdgesChange. Apply a batch of them with applyEdgeChanges.",
		Definition: `
type EdgeChange =
  | EdgeSelectionChange
  | EdgeRemoveChange
  | EdgeAddChange
  | EdgeReplaceChange;`,
		Variants: []ChangeVariant{
			{Kind: "select", Fields: "id, selected"},
			{Kind: "remove", Fields: "id"},
			{Kind: "add", Fields: "item, index?"},
			{Kind: "replace", Fields: "id, item"},
		},
	},
	{
		Name:        "Connection",
		Category:    TypeCategoryEdges,
		Description: "The endpoints of a connection the user has drawn, passed to onConnect. Turn it into an Edge with addEdge.",
		Definition: `
type Connection = {
  source: string;
  target: string;
  sourceHandle: string | null;
  targetHandle: string | null;
};`,
	},
	{
		Name:        "Viewport",
		Category:    TypeCategoryViewport,
		Description: "The pan offset and zoom level of the flow canvas.",
		Definition: `
type Viewport = {
  x: number;
  y: number;
  zoom: number;
};`,
	},
	{
		Name:        "FitViewOptions",
		Category:    TypeCategoryViewport,
		Description: "Options for fitView calls and the fitView prop.",
		Definition: `
type FitViewOptions = {
  padding?: number;
  includeHiddenNodes?: boolean;
  minZoom?: number;
  maxZoom?: number;
  duration?: number;
  nodes?: (Node | { id: string })[];
};`,
	},
	{
		Name:        "XYPosition",
		Category:    TypeCategoryGeometry,
		Description: "A point in flow coordinates.",
		Definition: `
type XYPosition = {
  x: number;
  y: number;
};`,
	},
	{
		Name:        "Rect",
		Category:    TypeCategoryGeometry,
		Description: "A rectangle in flow coordinates, as returned by getNodesBounds.",
		Definition: `
type Rect = {
  x: number;
  y: number;
  width: number;
  height: number;
};`,
	},
	{
		Name:        "CoordinateExtent",
		Category:    TypeCategoryGeometry,
		Description: "A bounding box given as [top-left, bottom-right] corner pairs, used for nodeExtent and translateExtent.",
		Definition: `
type CoordinateExtent = [[number, number], [number, number]];`,
	},
	{
		Name:        "ReactFlowInstance",
		Category:    TypeCategoryInstance,
		Description: "The imperative api returned by useReactFlow: node and edge accessors, viewport control, and coordinate conversion.",
		Definition: `
type ReactFlowInstance<NodeType extends Node = Node, EdgeType extends Edge = Edge> = {
  getNodes: () => NodeType[];
  setNodes: (nodes: NodeType[] | ((nodes: NodeType[]) => NodeType[])) => void;
  addNodes: (nodes: NodeType | NodeType[]) => void;
  getNode: (id: string) => NodeType | undefined;
  getEdges: () => EdgeType[];
  setEdges: (edges: EdgeType[] | ((edges: EdgeType[]) => EdgeType[])) => void;
  addEdges: (edges: EdgeType | EdgeType[]) => void;
  getEdge: (id: string) => EdgeType | undefined;
  deleteElements: (params: { nodes?: { id: string }[]; edges?: { id: string }[] }) => Promise<void>;
  fitView: (options?: FitViewOptions) => Promise<boolean>;
  zoomIn: (options?: { duration?: number }) => Promise<boolean>;
  zoomOut: (options?: { duration?: number }) => Promise<boolean>;
  zoomTo: (zoom: number, options?: { duration?: number }) => Promise<boolean>;
  setViewport: (viewport: Viewport, options?: { duration?: number }) => Promise<boolean>;
  getViewport: () => Viewport;
  screenToFlowPosition: (position: XYPosition) => XYPosition;
  flowToScreenPosition: (position: XYPosition) => XYPosition;
  toObject: () => ReactFlowJsonObject<NodeType, EdgeType>;
};`,
	},
}
